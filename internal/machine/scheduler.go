package machine

import (
	"context"
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Run boots the machine at the cartridge address and executes instructions
// until the quit key is pressed, the context is cancelled or a fatal error
// occurs. The frontend is closed before Run returns.
//
// Every iteration executes at most one instruction paced to the cycle
// duration, polls the input until the next timer tick is due, renders a
// changed display and ticks the timers.
func (m *Machine) Run(ctx context.Context, frontend Frontend) (err error) {
	defer func() {
		if closeErr := frontend.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing frontend: %w", closeErr)
		}
	}()

	m.pc = m.cartridgeAddress
	m.resetTick()
	m.running = true
	m.logger.Info("Booting machine",
		log.String("start", fmt.Sprintf("$%03X", m.pc)),
		log.String("cycle", m.cycle.String()))

	cycleAt := m.clock.Now()
	for m.running {
		if !m.keyWait.blocked() {
			if elapsed := m.clock.Now().Sub(cycleAt); elapsed <= m.cycle {
				m.clock.Sleep(m.cycle - elapsed)
			}
			cycleAt = m.clock.Now()
			if err := m.Step(); err != nil {
				return err
			}
		}

		events, err := frontend.PollEvents(m.nextTickLeft())
		if err != nil {
			return fmt.Errorf("polling input: %w", err)
		}
		m.handleKeyEvents(events)

		if err := m.render(frontend); err != nil {
			return err
		}

		if m.tickDue() {
			m.tick()
		}

		if ctx.Err() != nil {
			m.running = false
		}
	}

	m.logger.Info("Machine halted", log.Int("ticks", int(m.tickCount)))
	return ctx.Err()
}
