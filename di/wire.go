//go:build wireinject
// +build wireinject

package di

import (
	"inn/config"
	"inn/infras/jwt"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/infras/payment"
	"inn/infras/postgres"
	"inn/infras/redis"
	"inn/infras/s3"
	"inn/permissions"
	"inn/shared/cache"
	"inn/transport/http"
	"inn/transport/http/middleware"
	"inn/transport/http/router"

	"github.com/google/wire"

	authService "inn/internal/domains/auth/service"
	bookingRepository "inn/internal/domains/booking/repository"
	bookingService "inn/internal/domains/booking/service"
	paymentRepository "inn/internal/domains/payment/repository"
	paymentService "inn/internal/domains/payment/service"
	roomRepository "inn/internal/domains/room/repository"
	roomService "inn/internal/domains/room/service"
	userRepository "inn/internal/domains/user/repository"
	userService "inn/internal/domains/user/service"

	authHandler "inn/internal/handlers/auth"
	bookingHandler "inn/internal/handlers/booking"
	paymentHandler "inn/internal/handlers/payment"
	roomHandler "inn/internal/handlers/room"
	userHandler "inn/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	payment.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomDomain,
	bookingDomain,
	paymentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
