// Package ginadapter drives a hooks.Hooks dispatcher from gin.
//
//	r := gin.New()
//	r.Use(ginadapter.Middleware(h))
//	r.GET("/api/users/:id", func(c *gin.Context) {
//		_ = c.AbortWithError(http.StatusNotFound, httperror.New(http.StatusNotFound, ""))
//	})
//
// The last error attached with c.Error is dispatched to the error hook.
// Errors left without a response are answered with their HTTP status, or
// 500 for opaque errors. Panics are recovered into a 500.
package ginadapter
