package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KaushVerse/nginx-docker/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware stores the Accept-Language header on the context, falling back to en.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// go-i18n parses the full Accept-Language syntax, so the raw value is kept.
		lang := strings.TrimSpace(c.GetHeader("Accept-Language"))
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set(langKey, lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
