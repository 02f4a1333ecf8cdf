package middleware

import (
	"strings"
	"tasktracker/pkg/translator"

	"github.com/gin-gonic/gin"
)

const langKey = "lang"

// LanguageMiddleware stores the Accept-Language header for error
// translation. The localizer understands the raw header, including q-values.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := strings.TrimSpace(c.GetHeader("Accept-Language"))
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set(langKey, lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, ok := c.Get(langKey); ok {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
