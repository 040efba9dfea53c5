package helper

import (
	"fmt"

	"waitify/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueBusinessSlug derives a URL slug from the business name,
// suffixing a counter until it is free.
func GenerateUniqueBusinessSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Business{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
