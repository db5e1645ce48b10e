package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDContextKey é a chave usada para armazenar o request id no contexto
const RequestIDContextKey = "request_id"

// RequestIDHeader é o header usado para propagar o request id
const RequestIDHeader = "X-Request-ID"

// RequestID atribui um identificador único a cada requisição.
// Respeita o X-Request-ID enviado pelo cliente, se houver.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
