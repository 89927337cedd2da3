package vns

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/zerr"
)

// InitMode - способ построения начального пула.
type InitMode string

const (
	// InitUniform - InitialiseSolution для каждой ячейки по порядку.
	InitUniform InitMode = "uniform"
	// InitGreedy - равномерная инициализация и затем проход по
	// сужающемуся списку кандидатов (RCL) с локальным поиском.
	InitGreedy InitMode = "greedy"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = zerr.New("invalid vns config")

type Config struct {
	// PoolSize - число ячеек памяти (N).
	PoolSize int `yaml:"pool_size" validate:"gte=1"`

	// ShakeSteps - число подшагов встряски; 0 означает PoolSize.
	ShakeSteps int `yaml:"shake_steps" validate:"gte=0"`

	Init InitMode `yaml:"init" validate:"oneof=uniform greedy"`

	// CheckEveryApply - опрашивать TimeAuthority после каждого применения
	// эвристики, а не только в начале итерации.
	CheckEveryApply bool `yaml:"check_every_apply"`
}

func DefaultConfig() Config {
	return Config{
		PoolSize:        10,
		ShakeSteps:      0,
		Init:            InitUniform,
		CheckEveryApply: true,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "ошибка валидации"), "cause", err.Error())
	}
	fe := fieldErrs[0]
	e := zerr.With(zerr.Wrap(ErrInvalidConfig, "некорректное значение поля"), "field", fe.Field())
	e = zerr.With(e, "rule", fe.Tag())
	return zerr.With(e, "value", fe.Value())
}

// shakeSteps возвращает фактическое число подшагов встряски.
func (c Config) shakeSteps() int {
	if c.ShakeSteps > 0 {
		return c.ShakeSteps
	}
	return c.PoolSize
}
