package api

// SerialDeviceType describes the physical form of a serial port.
type SerialDeviceType uint8

const (
	SerialRS232 SerialDeviceType = iota
	SerialTTLUART
	SerialUSBCDC
	SerialMIDI
)

// SerialDeviceInfo describes one serial port.
type SerialDeviceInfo struct {
	Name       string
	DeviceType SerialDeviceType
}

type DataBits uint8

const (
	DataBits8 DataBits = iota
	DataBits7
	DataBits6
	DataBits5
)

type StopBits uint8

const (
	StopBits1 StopBits = iota
	StopBits2
)

type Parity uint8

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

type Handshaking uint8

const (
	HandshakeNone Handshaking = iota
	HandshakeRTSCTS
	HandshakeXONXOFF
)

// SerialConfig is the line setting requested by serial_configure.
type SerialConfig struct {
	DataRateBps uint32
	DataBits    DataBits
	StopBits    StopBits
	Parity      Parity
	Handshaking Handshaking
}

// Timeout bounds a serial transfer, in milliseconds.
type Timeout uint32
