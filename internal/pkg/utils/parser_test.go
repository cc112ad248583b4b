package utils

import (
	"testing"

	"optizen-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCoerceSurgeries(t *testing.T) {
	t.Run("JSON decoded shape", func(t *testing.T) {
		surgeries := CoerceSurgeries([]interface{}{
			map[string]interface{}{
				"surgery_name": "Phacoemulsification",
				"anesthesia":   "77777777-7777-7777-7777-777777777777",
				"eye":          "66666666-6666-6666-6666-666666666666",
			},
			map[string]interface{}{"surgery_name": ""},
			"not an object",
		})

		assert.Equal(t, []models.Surgery{
			{
				SurgeryName: "Phacoemulsification",
				Anesthesia:  "77777777-7777-7777-7777-777777777777",
				Eye:         "66666666-6666-6666-6666-666666666666",
			},
		}, surgeries)
	})

	t.Run("BSON decoded shape", func(t *testing.T) {
		surgeries := CoerceSurgeries(primitive.A{
			primitive.M{"surgery_name": "Trabeculectomy"},
		})

		assert.Equal(t, []models.Surgery{{SurgeryName: "Trabeculectomy"}}, surgeries)
	})

	t.Run("Non-list values yield nothing", func(t *testing.T) {
		assert.Nil(t, CoerceSurgeries(nil))
		assert.Nil(t, CoerceSurgeries("surgeries"))
		assert.Nil(t, CoerceSurgeries(map[string]interface{}{}))
	})
}
