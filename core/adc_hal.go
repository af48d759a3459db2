package core

// ADCChannelID identifies a logical ADC channel.
type ADCChannelID uint8

// ADCValue is the raw reading as seen by the rest of the firmware.
// Convention here: right-aligned 12-bit value, 0..ADCMax.
type ADCValue uint16

// ADCMax is the full-scale reading of the 12-bit converter.
const ADCMax = 4095

// ADCDriver is the abstract ADC interface that core code uses.
// Conversion is split into start/poll/read so the core owns the wait and its retry budget.
type ADCDriver interface {
	// ConfigureChannel prepares a channel for analog input.
	ConfigureChannel(ch ADCChannelID) error

	// StartConversion triggers a single conversion on ch.
	StartConversion(ch ADCChannelID) error

	// ConversionDone reports whether the last conversion on ch has finished.
	ConversionDone(ch ADCChannelID) bool

	// ReadResult returns the result of the last finished conversion on ch.
	ReadResult(ch ADCChannelID) (ADCValue, error)
}
