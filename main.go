package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gateway/app/account"
	"gateway/app/aggregate"
	"gateway/app/category"
	"gateway/app/hook"
	"gateway/app/item"
	"gateway/app/webhook"
	"gateway/domain"
	"gateway/infra/rabbitmq"
	"gateway/infra/upstream"
	"gateway/internal/middleware"
	"gateway/pkg/config"
	"gateway/pkg/events"
	"gateway/pkg/httperror"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Request any
type Response any

type HandlerInterface[R Request, Res Response] interface {
	Handle(ctx context.Context, req *R) (*Res, error)
}

type rawBodyCarrier interface {
	SetRawBody(body []byte)
}

type statusCoder interface {
	StatusCode() int
}

type passthrough interface {
	Passthrough() (int, []byte)
}

func handle[R Request, Res Response](handler HandlerInterface[R, Res]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R

		if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return writeError(c, httperror.BadRequest(
				"request.invalid_body",
				"Invalid body",
				fiber.Map{"error": err.Error()},
			))
		}

		if err := c.ParamsParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_path_params",
				"Invalid path params",
				fiber.Map{"error": err.Error()},
			))
		}

		if err := c.QueryParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_query_params",
				"Invalid query params",
				fiber.Map{"error": err.Error()},
			))
		}

		if err := c.ReqHeaderParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_headers",
				"Invalid headers",
				fiber.Map{"error": err.Error()},
			))
		}

		if carrier, ok := any(&req).(rawBodyCarrier); ok {
			carrier.SetRawBody(c.Body())
		}

		ctx := c.UserContext()

		res, err := handler.Handle(ctx, &req)
		if err != nil {
			return writeError(c, err)
		}

		// Proxy handlers hand back the upstream response untouched.
		if proxied, ok := any(res).(passthrough); ok {
			status, body := proxied.Passthrough()
			if len(body) == 0 {
				return c.SendStatus(status)
			}
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Status(status).Send(body)
		}

		if coder, ok := any(res).(statusCoder); ok {
			return c.Status(coder.StatusCode()).JSON(res)
		}

		return c.JSON(res)
	}
}

func main() {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, _ := zapConfig.Build()
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	appConfig := config.Read()
	zap.L().Info("app starting...")
	zap.L().Info("app config", zap.Any("appConfig", appConfig))

	app := fiber.New(fiber.Config{
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		Concurrency:  256 * 1024,
	})

	upstreamTimeout := time.Duration(appConfig.UpstreamTimeoutSeconds) * time.Second
	webhookTimeout := time.Duration(appConfig.WebhookTimeoutSeconds) * time.Second

	accountClient := upstream.NewAccountClient(appConfig.AccountServiceURL, upstreamTimeout)
	itemClient := upstream.NewItemClient(appConfig.ItemStoreURL, upstreamTimeout)

	itemAggregator := aggregate.NewItemAggregator(accountClient, itemClient)
	categoryAggregator := aggregate.NewCategoryAggregator(itemClient)
	webhookManager := webhook.NewManager(webhookTimeout)

	var publisher events.Publisher
	if appConfig.RabbitMQURL != "" {
		rabbitPublisher, err := rabbitmq.NewRabbitMQPublisher(appConfig.RabbitMQURL, appConfig.ServiceName)
		if err != nil {
			zap.L().Fatal("Failed to connect event publisher", zap.Error(err))
		}
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
	} else {
		zap.L().Warn("RABBITMQ_URL not set, price change events will not be published")
	}

	listItemsHandler := item.NewListItemsHandler(itemAggregator)
	getItemHandler := item.NewGetItemHandler(itemClient)
	createItemHandler := item.NewCreateItemHandler(itemClient)
	replaceItemHandler := item.NewReplaceItemHandler(itemClient)
	modifyItemHandler := item.NewModifyItemHandler(itemClient, webhookManager, publisher, appConfig.ServiceName)
	deleteItemHandler := item.NewDeleteItemHandler(itemClient)
	userItemsHandler := item.NewUserItemsHandler(itemClient)
	usersWithItemsHandler := item.NewUsersWithItemsHandler(itemAggregator)

	registerWebhookHandler := hook.NewRegisterWebhookHandler(webhookManager)
	addFavoriteHandler := hook.NewAddFavoriteHandler(webhookManager)

	registerUserHandler := account.NewRegisterUserHandler(accountClient)
	registerAdminHandler := account.NewRegisterAdminHandler(accountClient)
	loginHandler := account.NewLoginHandler(accountClient)
	logoutHandler := account.NewLogoutHandler(accountClient)
	listUsersHandler := account.NewListUsersHandler(accountClient)

	listCategoriesHandler := category.NewListCategoriesHandler(categoryAggregator)
	createCategoryHandler := category.NewCreateCategoryHandler(itemClient)

	app.Use(middleware.NewRequestBaseMiddleware())

	publicRoutes := app.Group("/api/v1")
	publicRoutes.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the second-hand store gateway!"})
	})
	publicRoutes.Get("/items", handle[item.ListItemsRequest, domain.EnrichedListing](listItemsHandler))
	publicRoutes.Get("/items/:itemId", handle[item.GetItemRequest, upstream.Response](getItemHandler))
	publicRoutes.Get("/categories", handle[category.ListCategoriesRequest, domain.CategoryListing](listCategoriesHandler))

	publicRoutes.Post("/webhooks/register", handle[hook.RegisterWebhookRequest, hook.RegisterWebhookResponse](registerWebhookHandler))
	publicRoutes.Post("/webhooks/favorite", handle[hook.AddFavoriteRequest, hook.AddFavoriteResponse](addFavoriteHandler))

	publicRoutes.Post("/auth/register", handle[account.RegisterUserRequest, upstream.Response](registerUserHandler))
	publicRoutes.Post("/auth/register-admin", handle[account.RegisterAdminRequest, upstream.Response](registerAdminHandler))
	publicRoutes.Post("/auth/login", handle[account.LoginRequest, upstream.Response](loginHandler))

	protectedRoutes := app.Group("/api/v1", middleware.NewSecurityHeadersMiddleware())
	protectedRoutes.Post("/items", handle[item.CreateItemRequest, upstream.Response](createItemHandler))
	protectedRoutes.Put("/items/:itemId", handle[item.ReplaceItemRequest, upstream.Response](replaceItemHandler))
	protectedRoutes.Patch("/items/:itemId", handle[item.ModifyItemRequest, upstream.Response](modifyItemHandler))
	protectedRoutes.Delete("/items/:itemId", handle[item.DeleteItemRequest, upstream.Response](deleteItemHandler))
	protectedRoutes.Get("/users/:userId/items", handle[item.UserItemsRequest, domain.UserItems](userItemsHandler))
	protectedRoutes.Get("/users-with-items", handle[item.UsersWithItemsRequest, domain.UsersWithItems](usersWithItemsHandler))
	protectedRoutes.Post("/categories", handle[category.CreateCategoryRequest, upstream.Response](createCategoryHandler))
	protectedRoutes.Post("/auth/logout", handle[account.LogoutRequest, upstream.Response](logoutHandler))
	protectedRoutes.Get("/auth/admin/users", handle[account.ListUsersRequest, upstream.Response](listUsersHandler))

	// Start server in a goroutine
	go func() {
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", appConfig.Port)); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", appConfig.Port))

	gracefulShutdown(app)
}

func gracefulShutdown(app *fiber.App) {
	// Create channel for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown signal
	<-sigChan
	zap.L().Info("Shutting down server...")

	// Shutdown with 5 second timeout
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("Error during server shutdown", zap.Error(err))
	}

	zap.L().Info("Server gracefully stopped")
}

func writeError(c *fiber.Ctx, err error) error {
	var upstreamErr *upstream.Error
	if errors.As(err, &upstreamErr) {
		// The upstream answered: its status and body pass through
		// verbatim so callers see the store's own error semantics.
		if !upstreamErr.Unreachable() {
			zap.L().Warn("Upstream rejected request",
				zap.String("upstream", upstreamErr.Upstream),
				zap.Int("status", upstreamErr.Status))
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Status(upstreamErr.Status).Send(upstreamErr.Body)
		}

		if upstreamErr.Timeout() {
			zap.L().Error("Upstream call timed out",
				zap.String("upstream", upstreamErr.Upstream),
				zap.Error(upstreamErr))
			return writeError(c, httperror.GatewayTimeout(
				"upstream.timeout",
				"Upstream service timed out",
				fiber.Map{"upstream": upstreamErr.Upstream},
			))
		}

		zap.L().Error("Upstream unreachable",
			zap.String("upstream", upstreamErr.Upstream),
			zap.Error(upstreamErr))
		return writeError(c, httperror.BadGateway(
			"upstream.unreachable",
			"Upstream service is unavailable",
			fiber.Map{"upstream": upstreamErr.Upstream},
		))
	}

	var httpErr *httperror.Error
	if errors.As(err, &httpErr) {
		payload := fiber.Map{
			"code":    httpErr.Code,
			"message": httpErr.Message,
		}

		if httpErr.Details != nil {
			payload["details"] = httpErr.Details
		}

		if httpErr.Status >= fiber.StatusInternalServerError {
			zap.L().Error("Handler returned server error", zap.String("code", httpErr.Code), zap.Error(httpErr))
		} else {
			zap.L().Warn("Handler returned client error", zap.String("code", httpErr.Code), zap.Error(httpErr))
		}

		return c.Status(httpErr.Status).JSON(payload)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		zap.L().Warn("Fiber validation error", zap.String("message", fiberErr.Message), zap.Error(err))
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"code":    "request.invalid",
			"message": fiberErr.Message,
		})
	}

	zap.L().Error("Unhandled error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    "internal_server_error",
		"message": "Internal server error.",
	})
}
