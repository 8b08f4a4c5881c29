package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerUnit maps physics units to screen pixels.
	PixelsPerUnit = 32.0

	// TPS is the fixed simulation rate; every tick advances 1/TPS seconds.
	TPS = 60

	// Gravity is the engine gravity in place before any magnet override.
	Gravity = -9.81
)
