package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/pkg/translator"
)

// LanguageMiddleware stores the request language for error translation.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Keep language handling simple for now: use raw header value, fallback to en.
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
