package api

import "Reachboard/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ProfileHandler *handler.ProfileHandler
	URLHandler     *handler.URLHandler
}
