package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"glowsync/internal/backlight"
	"glowsync/internal/config"
	"glowsync/internal/lights"
	"glowsync/internal/relay"
	"glowsync/internal/screen"
)

var backlightCmd = &cobra.Command{
	Use:   "backlight",
	Short: "Continuously sync one device to the dominant screen color",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		algorithm, err := screen.AlgorithmByName(cfg.ColorAlgo)
		if err != nil {
			return err
		}

		descriptors, err := config.LoadDescriptors(cfg.DevicesFile)
		if err != nil {
			return err
		}
		deviceCfg, err := config.DeviceConfig(cfg.DeviceName, descriptors)
		if err != nil {
			return err
		}

		sender, err := relay.New(cfg.RelayAPIURL, cfg.RelayTimeout)
		if err != nil {
			return err
		}

		lock, err := acquireDeviceLock(cfg.DeviceName)
		if err != nil {
			return err
		}
		defer lock.Unlock()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		device, err := lights.NewDevice(deviceCfg, sender)
		if err != nil {
			return err
		}
		if err := device.Initialize(ctx, cfg.StartingColor, cfg.InitialBrightness); err != nil {
			return err
		}

		var saver *screen.Saver
		if cfg.SaveImages {
			if saver, err = screen.NewSaver(cfg.OutputDir); err != nil {
				return err
			}
			defer saver.Close()
		}

		queue := lights.NewCommandQueue(device)
		queue.Start(ctx)
		defer queue.Stop(time.Second)

		logger.With(
			zap.String("device", cfg.DeviceName),
			zap.Stringer("interval", cfg.CaptureInterval),
			zap.String("algorithm", cfg.ColorAlgo),
			zap.Int("screen", cfg.ScreenNumber)).
			Info("Starting backlight monitor")
		logger.Info("Press Ctrl+C to stop")

		monitor := backlight.NewMonitor(device, queue, lights.Planner{BlinkDelay: cfg.BlinkDelay}, backlight.Config{
			DisplayID:         cfg.ScreenNumber,
			Interval:          cfg.CaptureInterval,
			Duration:          cfg.MonitorDuration,
			SampleStride:      cfg.SampleStride,
			DebounceThreshold: cfg.DebounceThreshold,
			Algorithm:         algorithm,
			Saver:             saver,
		})
		monitor.Run(ctx)

		logger.Info("Shutting down")
		return nil
	},
}
