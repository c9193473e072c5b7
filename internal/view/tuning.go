package view

// Physics defaults, tuned for 60 ticks/s.
const (
	DefaultTickRate = 60.0

	// Zoom.
	WheelScale         = 0.005 // scale units per wheel delta unit
	WheelDeltaPerNotch = 120.0 // wheel delta of one detent
	ScaleFriction      = 3.0
	ScaleDeadZone      = 0.1 // scale units/s
	MinScale           = 0.01
	DefaultScale       = 1.0

	// Pan.
	DragFriction      = 6.0
	VelocityThreshold = 15.0 // content units/s

	// Flashlight.
	RadiusImpulse      = 250.0 // content units/s per notch
	RadiusDeceleration = 10.0
	RadiusDeadZone     = 1.0
	DefaultRadius      = 100.0
	ShadowEaseRate     = 6.0 // opacity units/s
	ShadowMax          = 0.8
)

// Tuning carries the constants the physics integrates with. They are fixed
// for the lifetime of a Scheduler.
type Tuning struct {
	TickRate float64

	WheelScale         float64
	WheelDeltaPerNotch float64
	ZoomImpulse        float64 // added per wheel event in the wheel's direction
	ScaleFriction      float64
	ScaleDeadZone      float64
	MinScale           float64
	DefaultScale       float64

	DragFriction      float64
	VelocityThreshold float64

	RadiusImpulse      float64
	RadiusDeceleration float64
	RadiusDeadZone     float64
	DefaultRadius      float64
	EaseRate           float64
	ShadowMax          float64
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		TickRate:           DefaultTickRate,
		WheelScale:         WheelScale,
		WheelDeltaPerNotch: WheelDeltaPerNotch,
		ScaleFriction:      ScaleFriction,
		ScaleDeadZone:      ScaleDeadZone,
		MinScale:           MinScale,
		DefaultScale:       DefaultScale,
		DragFriction:       DragFriction,
		VelocityThreshold:  VelocityThreshold,
		RadiusImpulse:      RadiusImpulse,
		RadiusDeceleration: RadiusDeceleration,
		RadiusDeadZone:     RadiusDeadZone,
		DefaultRadius:      DefaultRadius,
		EaseRate:           ShadowEaseRate,
		ShadowMax:          ShadowMax,
	}
}

// DT is the fixed integration step.
func (t Tuning) DT() float64 { return 1 / t.TickRate }
