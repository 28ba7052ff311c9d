// server/cmd/api/main.go
package main

import (
	"log"

	"agri-traceability-api-server/config"
	"agri-traceability-api-server/internal/api/routes"
	"agri-traceability-api-server/internal/database"
	"agri-traceability-api-server/internal/ledger"
	"agri-traceability-api-server/internal/queue"
	"agri-traceability-api-server/internal/s3"
	"agri-traceability-api-server/internal/socket"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load biến môi trường từ .env (nếu có) rồi load configuration
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// 2. Kết nối MongoDB (lưu tài khoản người dùng)
	db, err := database.Connect(cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// 3. Seed tài khoản superadmin (actorID trùng owner của ledger)
	if err := database.SeedSuperAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed super admin: %v", err)
	}

	// 4. Khởi tạo ledger — engine registry truy xuất nguồn gốc
	l := ledger.New(cfg.Ledger.ContractName, cfg.Ledger.ContractVersion, cfg.Ledger.OwnerID)

	// 5. Khởi tạo WebSocket hub và đăng ký làm event sink
	wsHub := socket.NewHub()
	l.AddSink(wsHub)

	// 6. Publisher AMQP là tuỳ chọn: không cấu hình thì bỏ qua
	if cfg.AMQP.URL != "" {
		publisher, err := queue.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to AMQP broker: %v", err)
		}
		defer publisher.Close()
		l.AddSink(publisher)
	}

	// 7. Khởi tạo S3 uploader cho ảnh farm/sản phẩm
	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to create S3 uploader: %v", err)
	}

	// 8. Truyền tất cả các thành phần cần thiết vào router
	router := routes.SetupRouter(l, cfg, db, s3Uploader, wsHub)

	// 9. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
