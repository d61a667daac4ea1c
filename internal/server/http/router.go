package httpserver

import "net/http"

// NewMux 挂载 /api/ 路由，返回可以直接 ListenAndServe 的 ServeMux。
func NewMux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	return mux
}
