package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const DeviceIDHeader = "X-Device-Id"

// DeviceIDKey is the gin context key the resolved identifier is stored under.
const DeviceIDKey = "device_id"

// DeviceScopeMiddleware resolves the opaque device identifier every entity
// read and write is scoped by. When the client sends none, a fresh one is
// minted and echoed back so the client can persist it; reads under a minted
// id naturally see an empty data set. The raw identifier is never logged,
// only a hash prefix.
func DeviceScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.GetHeader(DeviceIDHeader)
		minted := false
		if deviceID == "" {
			deviceID = uuid.New().String()
			minted = true
		}

		c.Set(DeviceIDKey, deviceID)
		c.Writer.Header().Set(DeviceIDHeader, deviceID)

		if minted {
			log.Printf("Minted device id %s for %s %s", RedactDeviceID(deviceID), c.Request.Method, c.Request.URL.Path)
		}
		c.Next()
	}
}

// DeviceID returns the identifier resolved for this request.
func DeviceID(c *gin.Context) string {
	return c.GetString(DeviceIDKey)
}

// RedactDeviceID returns a short hash prefix safe for shared log sinks.
func RedactDeviceID(deviceID string) string {
	sum := sha256.Sum256([]byte(deviceID))
	return hex.EncodeToString(sum[:])[:8]
}
