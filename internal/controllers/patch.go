package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// patchColumns reads a partial-update body and maps the JSON keys the caller
// allows onto their database columns. Unknown keys are dropped. The result is
// fed to a map-based GORM Updates so that false/zero values are written too;
// struct-based Updates would silently skip them.
func patchColumns(c *gin.Context, allowed map[string]string) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	for key, value := range body {
		column, ok := allowed[key]
		if !ok {
			continue
		}

		// JSON arrays arrive as []interface{}; text[] columns need a
		// driver-aware type.
		if list, isList := value.([]interface{}); isList {
			arr := make(pq.StringArray, 0, len(list))
			for _, item := range list {
				s, isString := item.(string)
				if !isString {
					return nil, fmt.Errorf("field %s must be an array of strings", key)
				}
				arr = append(arr, s)
			}
			updates[column] = arr
			continue
		}

		// Timestamp columns arrive as RFC3339 strings.
		if strings.HasSuffix(column, "_at") {
			if value == nil {
				updates[column] = nil
				continue
			}
			s, isString := value.(string)
			if !isString {
				return nil, fmt.Errorf("field %s must be an RFC3339 timestamp", key)
			}
			parsed, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return nil, fmt.Errorf("field %s must be an RFC3339 timestamp", key)
			}
			updates[column] = parsed
			continue
		}

		updates[column] = value
	}

	return updates, nil
}
