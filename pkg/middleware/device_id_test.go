package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func deviceTestRouter(capture *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(DeviceScopeMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		*capture = DeviceID(c)
		c.Status(http.StatusOK)
	})
	return r
}

func TestDeviceScopePreservesProvidedID(t *testing.T) {
	var seen string
	r := deviceTestRouter(&seen)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(DeviceIDHeader, "my-device")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, "my-device", seen)
	require.Equal(t, "my-device", w.Header().Get(DeviceIDHeader))
}

func TestDeviceScopeMintsMissingID(t *testing.T) {
	var seen string
	r := deviceTestRouter(&seen)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	require.Equal(t, seen, w.Header().Get(DeviceIDHeader))

	// A second anonymous request gets a different identity.
	var second string
	r2 := deviceTestRouter(&second)
	w2 := httptest.NewRecorder()
	r2.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NotEqual(t, seen, second)
}

func TestRedactDeviceID(t *testing.T) {
	redacted := RedactDeviceID("my-device")
	require.Len(t, redacted, 8)
	require.NotContains(t, redacted, "my-device")
	require.Equal(t, redacted, RedactDeviceID("my-device"))
	require.NotEqual(t, redacted, RedactDeviceID("other-device"))
}
