package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/jrequejo/horex/internal/app"
	"github.com/jrequejo/horex/internal/export"
	"github.com/jrequejo/horex/internal/model"
	"github.com/jrequejo/horex/internal/validate"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the overtime ledger over local HTTP",
	Long: `serve exposes the session over a local HTTP API so a browser form can
drive it: coordinator and employee lookups, entry registration and
deletion, and report downloads.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to the configured http_addr)")
}

var (
	metricEntriesAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "horex_entries_accepted_total",
		Help: "Overtime entries accepted into the ledger.",
	})
	metricEntriesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "horex_entries_rejected_total",
		Help: "Candidate entries rejected by validation.",
	}, []string{"reason"})
	metricExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "horex_exports_total",
		Help: "Report downloads served.",
	}, []string{"format"})
)

func runServe(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd.Context(), app.Hooks{
		OnEntryAccepted: func(model.OvertimeEntry) {
			metricEntriesAccepted.Inc()
		},
		OnEntryRejected: func(err error) {
			reason := "invalid"
			var verr *validate.Error
			if errors.As(err, &verr) {
				reason = verr.Code
			}
			metricEntriesRejected.WithLabelValues(reason).Inc()
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(securityHeaders())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"roster":  sess.Roster().Len(),
			"entries": len(sess.Entries()),
		})
	})

	v1 := r.Group("/v1")
	registerRoutes(v1, sess)

	addr := serveAddr
	if addr == "" {
		addr = sess.HTTPAddr()
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	return nil
}

// entryRequest mirrors the form fields of the original browser client.
type entryRequest struct {
	RegisteredBy string `json:"quienRegistra" binding:"required"`
	EmployeeID   string `json:"dniCe" binding:"required"`
	EntryDate    string `json:"fechaIngreso" binding:"required"`
	EntryTime    string `json:"ingreso" binding:"required"`
	ExitDate     string `json:"fechaSalida"`
	ExitTime     string `json:"salida" binding:"required"`
	Note         string `json:"observacion"`
}

func registerRoutes(v1 *gin.RouterGroup, sess *app.Session) {
	v1.GET("/coordinators", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"coordinators": sess.Authorities()})
	})

	v1.GET("/employees", func(c *gin.Context) {
		coordinator := c.Query("coordinator")
		if coordinator == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinator query parameter required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"employees": sess.Candidates(coordinator, c.Query("q"))})
	})

	v1.GET("/entries", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"entries": sess.Entries()})
	})

	v1.POST("/entries", func(c *gin.Context) {
		var req entryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		entry, err := sess.Register(validate.Candidate{
			RegisteredBy: req.RegisteredBy,
			EmployeeID:   req.EmployeeID,
			EntryDate:    req.EntryDate,
			EntryTime:    req.EntryTime,
			ExitDate:     req.ExitDate,
			ExitTime:     req.ExitTime,
			Note:         req.Note,
		})
		if err != nil {
			var verr *validate.Error
			if errors.As(err, &verr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message, "reason": verr.Code})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"entry": entry})
	})

	v1.DELETE("/entries", func(c *gin.Context) {
		if c.Query("all") == "true" {
			if err := sess.Clear(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"cleared": true})
			return
		}

		var target model.OvertimeEntry
		if err := c.ShouldBindJSON(&target); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		found, err := sess.Delete(target)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "no matching entry"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	})

	v1.GET("/export", func(c *gin.Context) {
		format := c.DefaultQuery("format", "csv")
		data, filename, err := sess.Export(format)
		if err != nil {
			if errors.Is(err, export.ErrNoEntries) {
				c.JSON(http.StatusConflict, gin.H{"error": "nothing to export"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		metricExports.WithLabelValues(format).Inc()
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, contentType(format), data)
	})
}

func contentType(format string) string {
	switch format {
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		return "application/pdf"
	}
	return "text/csv"
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
