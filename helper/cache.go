package helper

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"wisata_booking/model"

	"github.com/redis/go-redis/v9"
)

var Redis = redis.NewClient(&redis.Options{Addr: redisAddr()})

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

const destinationCacheTTL = 5 * time.Minute

// CacheGetDestinations returns the cached public catalog payload, or false on
// a miss / unreachable redis (callers fall back to the database).
func CacheGetDestinations(key string) ([]byte, bool) {
	val, err := Redis.Get(context.Background(), key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func CacheSetDestinations(key string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := Redis.Set(context.Background(), key, data, destinationCacheTTL).Err(); err != nil {
		log.Printf("destination cache set failed: %v", err)
	}
}

func InvalidateDestinationCache() {
	ctx := context.Background()
	iter := Redis.Scan(ctx, 0, "destinations:*", 100).Iterator()
	for iter.Next(ctx) {
		Redis.Del(ctx, iter.Val())
	}
}

// PublishBookingStatus pushes a status change into the booking's pubsub
// channel; the websocket handler fans it out to connected clients.
func PublishBookingStatus(booking *model.Booking) {
	payload, err := json.Marshal(map[string]interface{}{
		"bookingNumber": booking.BookingNumber,
		"status":        booking.Status,
		"paymentStatus": booking.PaymentStatus,
		"displayState":  booking.DeriveDisplayState(),
	})
	if err != nil {
		return
	}

	channel := "booking:" + booking.BookingNumber
	if err := Redis.Publish(context.Background(), channel, payload).Err(); err != nil {
		log.Printf("publish booking status failed: %v", err)
	}
}
