//go:build rp2040 || rp2350

package board

import (
	"machine"
	"time"
)

// USB is the CDC-ACM serial link, shared by debug text and telemetry frames.
type USB struct{}

// InitUSB configures machine.Serial, which is USB CDC on the RP2xxx.
func InitUSB() (USB, error) {
	err := machine.Serial.Configure(machine.UARTConfig{})
	return USB{}, err
}

// Write implements io.Writer.
func (USB) Write(data []byte) (int, error) {
	return machine.Serial.Write(data)
}

// Println writes s followed by CRLF; it is the firmware's debug writer.
func (u USB) Println(s string) {
	u.Write([]byte(s))
	u.Write([]byte("\r\n"))
}

// watchdogReset reboots the chip through the watchdog.
func watchdogReset() {
	if err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 1}); err == nil {
		machine.Watchdog.Start()
	}
	for {
		time.Sleep(time.Millisecond)
	}
}
