// internal/config/config.go
package config

import "image/color"

// Параметры окна и отрисовки. Симуляция о них ничего не знает.
const (
	ScreenWidth  = 1024
	ScreenHeight = 704
	TileSize     = 64.0
	FieldOffsetX = 0.0
	FieldOffsetY = 64.0
	TicksPerSec  = 60

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	SpeedButtonY     = 30
	SpeedButtonSize  = 12.0
	ClickCooldown    = 200 // ms

	ProjectileRadius = 4.0
	SpotRadius       = 0.38 // в тайлах
	FloatingTextTTL  = 0.8  // секунд
	ParticleTTL      = 0.5
)

// Rules holds the fixed simulation constants. Defaults come from
// DefaultRules and can be overridden per level.
type Rules struct {
	WaveCompletionBonus int     `yaml:"wave_completion_bonus"`
	ManualStartBonus    int     `yaml:"manual_start_bonus"`
	WaveCountdown       float64 `yaml:"wave_countdown"` // секунд до автостарта
	ProjectileSpeed     float64 `yaml:"projectile_speed"`
	ProjectileLifetime  float64 `yaml:"projectile_lifetime"`
	ArrivalRadius       float64 `yaml:"arrival_radius"`
	FeedbackCapacity    int     `yaml:"feedback_capacity"`
	MaxDeltaTime        float64 `yaml:"max_delta_time"`
	SellRefund          float64 `yaml:"sell_refund"`
}

// DefaultRules returns the built-in constants.
func DefaultRules() Rules {
	return Rules{
		WaveCompletionBonus: 25,
		ManualStartBonus:    10,
		WaveCountdown:       15.0,
		ProjectileSpeed:     12.0,
		ProjectileLifetime:  2.0,
		ArrivalRadius:       0.1,
		FeedbackCapacity:    128,
		MaxDeltaTime:        0.1,
		SellRefund:          0.5,
	}
}

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	PathColor         = color.RGBA{110, 90, 60, 255}
	SpotColor         = color.RGBA{70, 100, 120, 220}
	BastionColor      = color.RGBA{50, 205, 50, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	DamageTextColor   = color.RGBA{255, 220, 90, 255}
	RewardTextColor   = color.RGBA{120, 255, 140, 255}
	ParticleColor     = color.RGBA{200, 60, 60, 255}
	ProjectileColor   = color.RGBA{255, 255, 200, 255}
	HealthBarBack     = color.RGBA{60, 0, 0, 255}
	HealthBarFront    = color.RGBA{220, 40, 40, 255}
	UIBorderColor     = color.RGBA{240, 240, 240, 255}
	PanelColor        = color.RGBA{30, 30, 40, 230}
	UIBorderWidth     = float32(2.0)
	MenuStateColor    = color.RGBA{128, 128, 128, 220}
	PlayingStateColor = color.RGBA{220, 60, 60, 220}
	BetweenStateColor = color.RGBA{70, 130, 180, 220}
	VictoryStateColor = color.RGBA{50, 205, 50, 255}
	DefeatStateColor  = color.RGBA{20, 20, 20, 255}

	EnemyColors = []color.RGBA{
		{150, 170, 120, 255}, // shambler
		{200, 200, 90, 255},  // runner
		{140, 80, 60, 255},   // brute
		{120, 200, 80, 255},  // spitter
		{90, 30, 110, 255},   // behemoth
	}
	TowerColors = []color.RGBA{
		{255, 215, 0, 255},   // gatling
		{180, 180, 190, 255}, // cannon
		{50, 100, 255, 255},  // tesla
	}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220}, // x1
		{220, 60, 60, 220},  // x2
	}
)
