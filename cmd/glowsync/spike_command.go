package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"glowsync/internal/audio"
	"glowsync/internal/config"
	"glowsync/internal/lights"
	"glowsync/internal/relay"
	"glowsync/internal/screen"
	"glowsync/internal/spike"
	"glowsync/internal/util"
)

var spikeCmd = &cobra.Command{
	Use:   "spike",
	Short: "Flash devices with the dominant screen color on acoustic spikes",
	Long: `Reads signed 16-bit little-endian PCM from stdin and fires a light
episode whenever the chunk energy exceeds SPIKE_THRESHOLD, e.g.:

  arecord -f S16_LE -r 44100 -c 1 -t raw | glowsync spike`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// audio knobs only this command reads; the threshold is kept
		// decimal so "0.1"-style values round-trip exactly into the log
		threshold := util.Getenv("SPIKE_THRESHOLD", decimal.NewFromInt(2))
		chunkSize := util.Getenv("CHUNK_SIZE", 1024)

		algorithm, err := screen.AlgorithmByName(cfg.ColorAlgo)
		if err != nil {
			return err
		}

		descriptors, err := config.LoadDescriptors(cfg.DevicesFile)
		if err != nil {
			return err
		}

		sender, err := relay.New(cfg.RelayAPIURL, cfg.RelayTimeout)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// devices light up in SPIKE_DEVICES order
		devices := make([]*lights.Device, 0, len(cfg.SpikeDevices))
		for _, name := range cfg.SpikeDevices {
			deviceCfg, err := config.DeviceConfig(name, descriptors)
			if err != nil {
				return err
			}

			lock, err := acquireDeviceLock(name)
			if err != nil {
				return err
			}
			defer lock.Unlock()

			device, err := lights.NewDevice(deviceCfg, sender)
			if err != nil {
				return err
			}
			if err := device.Initialize(ctx, cfg.StartingColor, cfg.InitialBrightness); err != nil {
				return err
			}
			devices = append(devices, device)
		}

		var saver *screen.Saver
		if cfg.SaveImages {
			if saver, err = screen.NewSaver(cfg.OutputDir); err != nil {
				return err
			}
			defer saver.Close()
		}

		orchestrator := spike.NewOrchestrator(devices, spike.Config{
			DisplayID:    cfg.ScreenNumber,
			SampleStride: cfg.SampleStride,
			Algorithm:    algorithm,
			Saver:        saver,
		})

		logger.With(
			zap.Strings("devices", cfg.SpikeDevices),
			zap.Stringer("threshold", threshold)).
			Info("Starting spike monitor")
		logger.Info("Press Ctrl+C to stop")

		source := audio.NewPCMSource(os.Stdin, chunkSize)
		monitor := audio.NewMonitor(source, threshold.InexactFloat64(), func() {
			orchestrator.HandleSpike(ctx)
		})
		if err := monitor.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}

		logger.Info("Shutting down")
		return nil
	},
}
