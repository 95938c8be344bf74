// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")

		// Handle cases like "en-US,en;q=0.9,de;q=0.8" and keep the primary
		// subtag. Only English locales ship today; unknown languages fall
		// back to it.
		if lang != "" {
			langs := strings.Split(lang, ",")
			firstLang := strings.TrimSpace(strings.Split(langs[0], ";")[0])
			if idx := strings.Index(firstLang, "-"); idx > 0 {
				firstLang = firstLang[:idx]
			}
			lang = firstLang
		}
		if lang == "" {
			lang = "en"
		}

		c.Set("lang", lang)
		c.Next()
	}
}
