package handler

import (
	"math"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// halfStep accepts numbers that are a whole multiple of 0.5.
func halfStep(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		doubled := f.Float() * 2
		return doubled == math.Trunc(doubled)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("halfstep", halfStep); err != nil {
			panic(err)
		}
	}
}

// storedScore converts a 0 to 5 half-step score to the 0 to 10 stored scale.
func storedScore(score float64) int {
	return int(math.Round(score * 2))
}
