package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sellerhub/opsdash-be/internal/adapters/db"
	"github.com/sellerhub/opsdash-be/internal/core/domain"
)

// lookTemplate is one seedable look shape. Product ids are generated per
// seller so two sellers never share a catalog entry.
type lookTemplate struct {
	name         string
	productCount int
	markerCount  int
	status       domain.LookStatus
}

var lookTemplates = []lookTemplate{
	{"Summer Rooftop Look", 4, 3, domain.LookStatusPublished},
	{"City Break Essentials", 3, 2, domain.LookStatusPublished},
	{"Weekend Brunch Outfit", 5, 4, domain.LookStatusPublished},
	{"Office To Evening", 4, 2, domain.LookStatusPublished},
	{"Rainy Day Layers", 3, 3, domain.LookStatusDraft},
	{"Festival Ready", 6, 5, domain.LookStatusPublished},
	{"Minimalist Capsule", 2, 1, domain.LookStatusDraft},
	{"Coastal Evening", 4, 3, domain.LookStatusArchived},
	{"Winter Market Stroll", 5, 3, domain.LookStatusPublished},
	{"Studio Warmup", 3, 2, domain.LookStatusDraft},
}

// buildLook instantiates a template for a seller. Markers cluster loosely
// around the middle of the image so seeded data looks plausible in the UI.
func buildLook(rng *rand.Rand, sellerID string, tpl lookTemplate) *domain.Look {
	productIDs := make([]string, tpl.productCount)
	for i := range productIDs {
		productIDs[i] = fmt.Sprintf("prod-%s-%04d", strings.TrimPrefix(sellerID, "seller-"), rng.Intn(10000))
	}

	markers := make([]domain.Marker, tpl.markerCount)
	for i := range markers {
		markers[i] = domain.Marker{
			ProductID: productIDs[i%len(productIDs)],
			X:         0.2 + rng.Float64()*0.6,
			Y:         0.2 + rng.Float64()*0.6,
		}
	}

	lookID := uuid.New()
	look := &domain.Look{
		LookID:       lookID,
		SellerID:     sellerID,
		Name:         tpl.name,
		MainImageKey: fmt.Sprintf("looks/%s/%s_seed.jpg", sellerID, lookID),
		ProductIDs:   productIDs,
		Markers:      markers,
		Status:       tpl.status,
	}
	look.PrepareForStorage()
	return look
}

func buildReport(sellerID string, monthsBack int) *domain.PayoutReport {
	end := time.Now().AddDate(0, -monthsBack, 0)
	start := end.AddDate(0, -1, 0)

	report := &domain.PayoutReport{
		SellerID:    sellerID,
		PeriodStart: start,
		PeriodEnd:   end,
		Status:      domain.ReportStatusPending,
	}
	report.PrepareForStorage()
	return report
}

// Narrow views of the repositories so dry runs can skip connecting entirely.
type lookSink interface {
	Save(ctx context.Context, look *domain.Look) error
}

type reportSink interface {
	Save(ctx context.Context, report *domain.PayoutReport) error
}

func main() {
	var (
		sellerCount    = flag.Int("sellers", 5, "Number of demo sellers to seed")
		looksPerSeller = flag.Int("looks", 6, "Looks per seller (capped at the template count)")
		withReports    = flag.Bool("reports", false, "Also queue a pending payout report per seller")
		seed           = flag.Int64("seed", 0, "Random seed (0 uses current time)")
		logLevel       = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun         = flag.Bool("dry-run", false, "Preview changes without modifying database")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	ctx := context.Background()

	var (
		looks   lookSink
		reports reportSink
	)
	if !*dryRun {
		database, err := db.NewDatabase(ctx, &db.Config{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "opsdash"),
			Password:       getEnv("DB_PASSWORD", "opsdash_dev_2025"),
			Database:       getEnv("DB_NAME", "opsdash"),
			SSLMode:        getEnv("DB_SSL_MODE", "disable"),
			MaxConnections: 4,
			MinConnections: 1,
			ConnectTimeout: 10 * time.Second,
		}, logger)
		if err != nil {
			logger.Error("Failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.Close()

		looks = db.NewLookRepository(database, logger)
		reports = db.NewReportRepository(database, logger)
	}

	if *looksPerSeller > len(lookTemplates) {
		*looksPerSeller = len(lookTemplates)
	}

	totalLooks := 0
	totalReports := 0
	failed := []string{}
	perSeller := map[string]int{}

	for s := 1; s <= *sellerCount; s++ {
		sellerID := fmt.Sprintf("seller-%03d", s)
		fmt.Printf("PROGRESS: Seeding %d/%d: %s\n", s, *sellerCount, sellerID)

		for i := 0; i < *looksPerSeller; i++ {
			look := buildLook(rng, sellerID, lookTemplates[i])
			if err := look.Validate(); err != nil {
				logger.Error("Generated look failed validation",
					slog.String("seller_id", sellerID),
					slog.String("error", err.Error()))
				failed = append(failed, fmt.Sprintf("%s/%s", sellerID, look.Name))
				continue
			}

			if !*dryRun {
				if err := looks.Save(ctx, look); err != nil {
					logger.Error("Failed to save look",
						slog.String("seller_id", sellerID),
						slog.String("look", look.Name),
						slog.String("error", err.Error()))
					failed = append(failed, fmt.Sprintf("%s/%s", sellerID, look.Name))
					continue
				}
			}

			totalLooks++
			perSeller[sellerID]++
		}

		if *withReports {
			report := buildReport(sellerID, 1)
			if !*dryRun {
				if err := reports.Save(ctx, report); err != nil {
					logger.Error("Failed to save report",
						slog.String("seller_id", sellerID),
						slog.String("error", err.Error()))
					failed = append(failed, fmt.Sprintf("%s/report", sellerID))
					continue
				}
			}
			totalReports++
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING OPERATION SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Sellers Seeded: %d\n", len(perSeller))
	fmt.Printf("Looks Created: %d\n", totalLooks)
	if *withReports {
		fmt.Printf("Pending Reports Queued: %d\n", totalReports)
	}
	fmt.Printf("Random Seed: %d\n", *seed)

	for sellerID, count := range perSeller {
		fmt.Printf("  - %s: %d looks\n", sellerID, count)
	}

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, f := range failed {
			fmt.Printf("  - %s\n", f)
		}
	}

	logger.Info("Seed operation completed",
		slog.Int("looks_created", totalLooks),
		slog.Int("reports_queued", totalReports),
		slog.Int("failed", len(failed)))

	if *dryRun {
		fmt.Println("\n[DRY RUN] No changes were made to the database")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
