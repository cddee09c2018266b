package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"doi-hand/config"
	"doi-hand/models"
	"doi-hand/providers"
	"doi-hand/providers/semanticscholar"
	"doi-hand/services"
)

var (
	doiLookupsCounter      prometheus.Counter
	doiMissesCounter       prometheus.Counter
	metadataFetchesCounter prometheus.Counter
)

func init() {
	doiLookupsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "doi_lookups_total",
			Help: "Total number of PMC to DOI lookups served.",
		},
	)
	doiMissesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "doi_lookup_misses_total",
			Help: "Total number of PMC lookups that missed the dataset.",
		},
	)
	metadataFetchesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "metadata_fetches_total",
			Help: "Total number of outbound metadata provider calls.",
		},
	)
	prometheus.MustRegister(doiLookupsCounter, doiMissesCounter, metadataFetchesCounter)
}

// corsMiddleware erlaubt Cross-Origin-Zugriffe von allen Origins.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	// Dataset einmalig vor dem Serven laden
	store := services.NewDOIStore(cfg.DataDir, logging)
	if err := store.Load(); err != nil {
		logging.Fatal("Failed to load DOI dataset", zap.Error(err))
	}
	logging.Info("Successfully loaded DOI dataset", zap.Int("records", store.Len()))

	// Setup Provider
	guard := providers.NewRateGuard(cfg.ProviderMinInterval)
	s2Fetcher := semanticscholar.NewFetcher(cfg, logging, guard)
	if cfg.SemanticScholarAPIKey == "" {
		logging.Info("No Semantic Scholar API key configured, running unauthenticated")
	}
	logging.Info("Metadata provider ready",
		zap.String("provider", s2Fetcher.Name()),
		zap.Duration("min_interval", cfg.ProviderMinInterval))

	// Setup Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Routes
	setupInfoRoutes(router)
	setupDOIRoutes(router, store, logging)
	setupMetadataRoutes(router, store, s2Fetcher, logging)

	// Optionaler Cron zum Neuladen des Datasets
	if cfg.DataReloadCron != "" {
		cronScheduler := cron.New()
		_, err := cronScheduler.AddFunc(cfg.DataReloadCron, func() {
			logging.Info("Running scheduled dataset reload...")
			if err := store.Load(); err != nil {
				logging.Error("Dataset reload failed", zap.Error(err))
			} else {
				logging.Info("Dataset reload completed", zap.Int("records", store.Len()))
			}
		})
		if err != nil {
			logging.Fatal("Invalid DATA_RELOAD_CRON schedule", zap.Error(err))
		}
		cronScheduler.Start()
	}

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

func setupInfoRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "PMC to DOI Lookup API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"GET /":              "API information",
				"GET /health":        "Health check",
				"GET /doi/{pmc_id}":  "Get DOI by PMC ID (path parameter)",
				"POST /doi":          "Get DOI by PMC ID (JSON body)",
				"GET /metadata/{id}": "Get citation metadata by DOI or PMC ID",
			},
			"example_usage": gin.H{
				"GET":      "/doi/PMC2910419 or /doi/2910419",
				"POST":     "/doi with body: {\"pmc_id\": \"PMC2910419\"}",
				"metadata": "/metadata/PMC2910419 or /metadata/10.1152/jn.00378.2010",
			},
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "doi-hand"})
	})
}

func setupDOIRoutes(router *gin.Engine, store *services.DOIStore, log *zap.Logger) {
	// GET und POST verhalten sich identisch; POST existiert für Clients,
	// die einen Body statt eines Pfadsegments bevorzugen.
	resolve := func(raw string) models.DOIResponse {
		doiLookupsCounter.Inc()
		canonical := services.NormalizePMCID(raw)
		doi, found := store.Lookup(canonical)
		if !found {
			doiMissesCounter.Inc()
			log.Debug("PMC ID not found in dataset", zap.String("pmc_id", canonical))
			return models.DOIResponse{
				PMCID:   raw,
				DOI:     nil,
				Found:   false,
				Message: fmt.Sprintf("PMC %s not found in database", raw),
			}
		}
		return models.DOIResponse{
			PMCID:   canonical,
			DOI:     &doi,
			Found:   true,
			Message: "DOI found successfully",
		}
	}

	router.GET("/doi/:pmc_id", func(c *gin.Context) {
		c.JSON(http.StatusOK, resolve(c.Param("pmc_id")))
	})

	router.POST("/doi", func(c *gin.Context) {
		var req struct {
			PMCID string `json:"pmc_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. 'pmc_id' field is required."})
			return
		}
		c.JSON(http.StatusOK, resolve(req.PMCID))
	})
}

func setupMetadataRoutes(router *gin.Engine, store *services.DOIStore, provider providers.MetadataProvider, log *zap.Logger) {
	// Wildcard-Route, weil DOIs Slashes enthalten (z.B. 10.1128/AEM.03065-09).
	router.GET("/metadata/*id", func(c *gin.Context) {
		id := strings.TrimPrefix(c.Param("id"), "/")

		var doi string
		var pmcID *string
		if services.LooksLikeDOI(id) {
			doi = strings.TrimSpace(id)
		} else {
			canonical := services.NormalizePMCID(id)
			pmcID = &canonical
			resolved, found := store.Lookup(canonical)
			if !found {
				// Ohne auflösbare DOI wird der Provider nie kontaktiert
				doiMissesCounter.Inc()
				c.JSON(http.StatusOK, models.MetadataResponse{
					DOI:     "",
					PMCID:   pmcID,
					Found:   false,
					Message: fmt.Sprintf("PMC %s not found in database", id),
					Data:    nil,
				})
				return
			}
			doi = resolved
		}

		metadataFetchesCounter.Inc()
		data, err := provider.FetchPaper(c.Request.Context(), doi)
		if err != nil {
			if errors.Is(err, semanticscholar.ErrNotFound) {
				c.JSON(http.StatusOK, models.MetadataResponse{
					DOI:     doi,
					PMCID:   pmcID,
					Found:   false,
					Message: fmt.Sprintf("No metadata found for DOI %s", doi),
					Data:    nil,
				})
				return
			}
			log.Error("Metadata provider call failed", zap.String("doi", doi), zap.Error(err))
			c.JSON(http.StatusBadGateway, models.MetadataResponse{
				DOI:     doi,
				PMCID:   pmcID,
				Found:   false,
				Message: fmt.Sprintf("Metadata provider error: %v", err),
				Data:    nil,
			})
			return
		}

		c.JSON(http.StatusOK, models.MetadataResponse{
			DOI:     doi,
			PMCID:   pmcID,
			Found:   true,
			Message: "Metadata retrieved successfully",
			Data:    data,
		})
	})
}
