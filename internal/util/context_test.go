package util

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestWithClientIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
	}{
		{name: "Valid IP", ip: "192.168.1.1"},
		{name: "Empty IP", ip: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := WithClientIP(context.Background(), tt.ip)
			if got := GetIPFromContext(ctx); got != tt.ip {
				t.Errorf("Expected IP %q, got %q", tt.ip, got)
			}
		})
	}
}

func TestGetIPFromContext(t *testing.T) {
	t.Run("Empty context", func(t *testing.T) {
		if ip := GetIPFromContext(context.Background()); ip != "" {
			t.Errorf("Expected empty IP, got %s", ip)
		}
	})

	t.Run("Gin context", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Request.RemoteAddr = "10.0.0.7:52100"

		if ip := GetIPFromContext(c); ip != "10.0.0.7" {
			t.Errorf("Expected 10.0.0.7, got %s", ip)
		}
	})
}

func TestIPMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IPMiddleware())

	var seen any
	r.GET("/", func(c *gin.Context) {
		seen, _ = c.Get("client_ip")
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.8:40000"
	r.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "10.0.0.8" {
		t.Errorf("Expected client_ip 10.0.0.8, got %v", seen)
	}
}
