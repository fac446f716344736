package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"wms-backend/internal/adapter/export"
	httpadp "wms-backend/internal/adapter/http"
	appmw "wms-backend/internal/adapter/middleware"
	"wms-backend/internal/adapter/repository/mysql"
	"wms-backend/internal/config"
	"wms-backend/internal/infrastructure/cache"
	"wms-backend/internal/infrastructure/db"
	ucdir "wms-backend/internal/usecase/directory"
	ucperf "wms-backend/internal/usecase/performance"
	ucpa "wms-backend/internal/usecase/priceapproval"
	ucreg "wms-backend/internal/usecase/registration"
	ucreport "wms-backend/internal/usecase/report"
	"wms-backend/pkg/id"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	hubs := mysql.NewHubRepository(gdb)
	hubAdmins := mysql.NewHubAdminRepository(gdb)
	supers := mysql.NewSuperAdminRepository(gdb)
	wms := mysql.NewWishMasterRepository(gdb)
	regs := mysql.NewRegistrationRepository(gdb)
	pas := mysql.NewPriceApprovalRepository(gdb)
	entries := mysql.NewPerformanceRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// usecases
	regUC := ucreg.NewUsecase(regs, wms, hubAdmins, supers, tx)
	paUC := ucpa.NewUsecase(pas, wms, tx)
	perfUC := ucperf.NewUsecase(entries, wms, tx)
	reportUC := ucreport.NewUsecase(wms, hubAdmins, hubs, entries)
	dirUC := ucdir.NewUsecase(hubs, hubAdmins, supers, wms)

	// handlers
	h := httpadp.NewHandler()
	regH := httpadp.NewRegistrationHandler(regUC)
	paH := httpadp.NewPriceApprovalHandler(paUC)
	perfH := httpadp.NewPerformanceHandler(perfUC, reportUC, export.NewCSVExporter())
	reportH := httpadp.NewReportHandler(reportUC)
	dirH := httpadp.NewDirectoryHandler(dirUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: id.NewID32}))
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	api := e.Group("/api")

	// registration workflow
	api.POST("/registrations", regH.Submit)
	api.GET("/registrations/pending", regH.ListPending)
	api.GET("/registrations/:request_id", regH.GetRequest)
	api.POST("/registrations/:request_id/resolve", regH.Resolve)

	// price approval workflow
	api.POST("/price-approvals", paH.Propose)
	api.GET("/price-approvals/pending", paH.ListPending)
	api.POST("/price-approvals/:request_id/resolve", paH.Resolve)

	// daily performance ledger
	api.POST("/performance/entries", perfH.RecordEntry, idemp)
	api.DELETE("/performance/:wish_master_id/month", perfH.DeleteMonth)
	api.GET("/performance/:wish_master_id/export", perfH.ExportMonth)

	// reports
	api.GET("/reports/wish-masters/:wish_master_id/summary", reportH.Summary)
	api.GET("/reports/wish-masters/:wish_master_id/detailed", reportH.Detailed)
	api.GET("/reports/wish-masters/:wish_master_id/day", reportH.DayEntry)
	api.GET("/reports/wish-masters/search", reportH.Search)
	api.GET("/reports/hub-admins/:hub_admin_id/wish-masters", reportH.RosterByHubAdmin)
	api.GET("/reports/hubs/:hub_id/wish-masters", reportH.RosterByHub)

	// directory
	api.POST("/hubs", dirH.CreateHub)
	api.GET("/hubs", dirH.ListHubs)
	api.GET("/hubs/:hub_id", dirH.GetHub)
	api.POST("/hubs/:hub_id/deactivate", dirH.DeactivateHub)
	api.POST("/hub-admins", dirH.CreateHubAdmin)
	api.GET("/hub-admins", dirH.ListHubAdmins)
	api.POST("/hub-admins/:hub_admin_id/deactivate", dirH.DeactivateHubAdmin)
	api.POST("/super-admins", dirH.CreateSuperAdmin)
	api.POST("/wish-masters/:wish_master_id/deactivate", dirH.DeactivateWishMaster)
	api.GET("/employees/inactive", dirH.ListInactiveEmployees)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
