package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Routes interface {
	RegisterRoutes(r gin.IRouter)
}

// NewRouter 建立 gin engine，依序套用 middleware 並註冊所有路由與 /metrics。
// trustedProxies 為空時 ClientIP 只採用連線來源位址，不讀取 X-Forwarded-For
func NewRouter(trustedProxies []string, middleware []gin.HandlerFunc, routes ...Routes) (*gin.Engine, error) {
	RegisterValidators()

	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(middleware...)

	for _, route := range routes {
		route.RegisterRoutes(r)
	}
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r, nil
}
