package server_test

import (
	"testing"
	"time"

	"post-receptor/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Plain", "8080", ":8080"},
		{"WithColon", ":9000", ":9000"},
		{"Spaces", " 3000 ", ":3000"},
		{"Empty", "", ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Addr())
		})
	}
}

func TestConfig_Limits(t *testing.T) {
	assert.Equal(t, 16*1024*1024, server.Config{}.BodyLimit())
	assert.Equal(t, 2*1024*1024, server.Config{BodyLimitMB: 2}.BodyLimit())
	assert.Equal(t, 15*time.Second, server.Config{}.ShutdownTimeout())
	assert.Equal(t, 3*time.Second, server.Config{ShutdownTimeoutSeconds: 3}.ShutdownTimeout())
}
