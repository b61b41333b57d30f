package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-market-bot/config"
	"github.com/yourusername/telegram-market-bot/internal/content"
	"github.com/yourusername/telegram-market-bot/internal/delivery/httpapi"
	"github.com/yourusername/telegram-market-bot/internal/delivery/telegram"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
	"github.com/yourusername/telegram-market-bot/internal/infrastructure/cryptopay"
	"github.com/yourusername/telegram-market-bot/internal/infrastructure/parser"
	"github.com/yourusername/telegram-market-bot/internal/infrastructure/storage"
	"github.com/yourusername/telegram-market-bot/internal/infrastructure/textcache"
	"github.com/yourusername/telegram-market-bot/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Konfiguratsiyani yuklashda xatolik: %v", err)
	}

	c, err := content.Load(cfg.ContentPath)
	if err != nil {
		log.Fatalf("Kontentni yuklashda xatolik: %v", err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("Botni yaratishda xatolik: %v", err)
	}

	// In-memory repositorylar
	stateRepo := storage.NewMemoryStateRepository()
	ticketRepo := storage.NewMemoryTicketRepository()
	invoiceRepo := storage.NewMemoryInvoiceRepository()
	userRepo := storage.NewMemoryUserRepository()
	listingRepo := storage.NewMemoryListingRepository()
	adminRepo := storage.NewMemoryAdminRepository()
	logRepo := storage.NewMemorySupportLogRepository()
	priceRepo := storage.NewMemoryPriceRepository()

	textCache, err := textcache.New(24 * time.Hour)
	if err != nil {
		log.Fatalf("Matn keshini yaratishda xatolik: %v", err)
	}

	cryptoClient := cryptopay.NewClient(cfg.CryptoPayToken, cfg.CryptoPayBaseURL)
	priceParser := parser.NewExcelPriceParser()
	publisher := telegram.NewChannelPublisher(bot, cfg.ChannelID)
	notifier := telegram.NewNotifier(bot)

	// Usecaselar
	wizardUseCase := usecase.NewWizardUseCase(stateRepo, priceRepo, c)
	supportUseCase := usecase.NewSupportUseCase(ticketRepo, logRepo, notifier, c)
	publishUseCase := usecase.NewPublishUseCase(stateRepo, listingRepo, publisher, textCache)
	paymentUseCase := usecase.NewPaymentUseCase(invoiceRepo, userRepo, cryptoClient, cfg.PremiumAmount)
	adminUseCase := usecase.NewAdminUseCase(adminRepo, priceRepo, priceParser, listingRepo, ticketRepo, userRepo, logRepo, cfg.AdminPassword)

	handler := telegram.NewBotHandler(
		bot,
		wizardUseCase,
		supportUseCase,
		publishUseCase,
		paymentUseCase,
		adminUseCase,
		c,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Admin HTTP API
	apiServer := &http.Server{
		Addr:    cfg.AdminAPIAddr,
		Handler: httpapi.New(httpapi.NewTicketHandler(supportUseCase), cfg.AdminAPIToken),
	}
	go func() {
		log.Printf("Admin API %s da ishga tushdi", cfg.AdminAPIAddr)
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Admin API xatosi: %v", err)
		}
	}()

	// To'lovlarni davriy tekshirish
	go pollPayments(ctx, paymentUseCase, notifier, cfg.PollInterval)

	// Davriy tozalash
	go runSweeps(ctx, stateRepo, invoiceRepo, ticketRepo, logRepo, cfg)

	// Bot asosiy oqimda ishlaydi
	if err := handler.Start(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Bot xatosi: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Admin API ni to'xtatishda xatolik: %v", err)
	}

	log.Println("Bot to'xtadi.")
}

// pollPayments faol hisoblarni davriy tekshirish va premium
// aktivatsiyalarini foydalanuvchilarga yetkazish
func pollPayments(ctx context.Context, payments usecase.PaymentUseCase, notifier repository.UserNotifier, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			activations, err := payments.PollOnce(ctx)
			if err != nil {
				log.Printf("To'lovlarni tekshirishda xatolik: %v", err)
				continue
			}
			for _, a := range activations {
				if !a.First {
					continue
				}
				if err := notifier.Notify(ctx, a.UserID, "🎉 Оплата получена! Премиум-доступ активирован."); err != nil {
					log.Printf("Foydalanuvchi %d ga xabar yuborishda xatolik: %v", a.UserID, err)
				}
			}
		}
	}
}

// runSweeps eskirgan ma'lumotlarni davriy tozalash
func runSweeps(
	ctx context.Context,
	stateRepo repository.StateRepository,
	invoiceRepo repository.InvoiceRepository,
	ticketRepo repository.TicketRepository,
	logRepo repository.SupportLogRepository,
	cfg *config.Config,
) {
	hourly := time.NewTicker(time.Hour)
	daily := time.NewTicker(24 * time.Hour)
	defer hourly.Stop()
	defer daily.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-hourly.C:
			if n, err := stateRepo.SweepIdle(ctx, cfg.DraftIdleWindow); err != nil {
				log.Printf("Draftlarni tozalashda xatolik: %v", err)
			} else if n > 0 {
				log.Printf("%d ta eskirgan draft tozalandi", n)
			}

			if n, err := invoiceRepo.SweepExpired(ctx, 24*time.Hour); err != nil {
				log.Printf("Hisoblarni tozalashda xatolik: %v", err)
			} else if n > 0 {
				log.Printf("%d ta eskirgan hisob tozalandi", n)
			}
		case <-daily.C:
			if n, err := ticketRepo.SweepFinished(ctx, cfg.TicketRetention); err != nil {
				log.Printf("Murojaatlarni tozalashda xatolik: %v", err)
			} else if n > 0 {
				log.Printf("%d ta yopilgan murojaat tozalandi", n)
			}

			if n, err := logRepo.Trim(ctx); err != nil {
				log.Printf("Support logni tozalashda xatolik: %v", err)
			} else if n > 0 {
				log.Printf("Support logdan %d ta yozuv tozalandi", n)
			}
		}
	}
}
