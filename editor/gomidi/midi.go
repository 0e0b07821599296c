package gomidi

import (
	"errors"
	"fmt"

	"github.com/raveland/raveland/editor"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type (
	// RTMIDIContext lists the rtmidi input ports and forwards the control
	// changes of the open port to the model through the broker.
	RTMIDIContext struct {
		driver       *rtmididrv.Driver
		broker       *editor.Broker
		currentIn    drivers.In
		stopListen   func()
		inputDevices []RTMIDIDevice
		initialized  bool
	}

	RTMIDIDevice struct {
		context *RTMIDIContext
		in      drivers.In
	}
)

// NewContext opens the driver. If that fails, the context reports
// editor.MIDISupportNoDriver and lists no inputs.
func NewContext(broker *editor.Broker) *RTMIDIContext {
	m := RTMIDIContext{broker: broker}
	// there's not much we can do if this fails, so just use m.driver = nil to
	// indicate no driver available
	m.driver, _ = rtmididrv.New()
	return &m
}

func (m *RTMIDIContext) Inputs(yield func(editor.MIDIInputDevice) bool) {
	if !m.initialized {
		m.initInputDevices()
	}
	for _, device := range m.inputDevices {
		if !yield(device) {
			break
		}
	}
}

func (m *RTMIDIContext) initInputDevices() {
	if m.driver == nil {
		return
	}
	ins, err := m.driver.Ins()
	if err != nil {
		return
	}
	for _, in := range ins {
		m.inputDevices = append(m.inputDevices, RTMIDIDevice{context: m, in: in})
	}
	m.initialized = true
}

func (m *RTMIDIContext) Support() editor.MIDISupport {
	if m.driver == nil {
		return editor.MIDISupportNoDriver
	}
	return editor.MIDISupported
}

// Open an input device while closing the currently open if necessary.
func (d RTMIDIDevice) Open() error {
	c := d.context
	if c.currentIn == d.in {
		return nil
	}
	if c.driver == nil {
		return errors.New("no driver available")
	}
	if c.HasDeviceOpen() {
		c.closeCurrent()
	}
	if err := d.in.Open(); err != nil {
		return fmt.Errorf("opening MIDI input failed: %w", err)
	}
	stop, err := midi.ListenTo(d.in, c.HandleMessage)
	if err != nil {
		d.in.Close()
		return fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	c.currentIn = d.in
	c.stopListen = stop
	return nil
}

func (d RTMIDIDevice) Close() error {
	if d.context.currentIn != d.in {
		return nil
	}
	return d.context.closeCurrent()
}

func (d RTMIDIDevice) IsOpen() bool   { return d.in.IsOpen() }
func (d RTMIDIDevice) String() string { return d.in.String() }

func (c *RTMIDIContext) closeCurrent() error {
	if c.stopListen != nil {
		c.stopListen()
		c.stopListen = nil
	}
	in := c.currentIn
	c.currentIn = nil
	if in == nil || !in.IsOpen() {
		return nil
	}
	return in.Close()
}

func (c *RTMIDIContext) Close() {
	if c.driver == nil {
		return
	}
	c.closeCurrent()
	c.driver.Close()
}

func (c *RTMIDIContext) HasDeviceOpen() bool {
	return c.currentIn != nil && c.currentIn.IsOpen()
}

// HandleMessage runs on the driver's goroutine. Control changes are handed
// to the model; everything else is ignored. If the model is busy and the
// channel is full, the message is dropped.
func (c *RTMIDIContext) HandleMessage(msg midi.Message, timestampms int32) {
	var channel, controller, value uint8
	if !msg.GetControlChange(&channel, &controller, &value) {
		return
	}
	editor.TrySend(c.broker.ToModel, editor.MsgToModel{Data: editor.ControlChange{
		Channel:    channel,
		Controller: controller,
		Value:      value,
	}})
}
