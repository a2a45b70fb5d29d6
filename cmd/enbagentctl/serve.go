package main

import (
	"github.com/spf13/cobra"

	"github.com/5g-empower/empower-enb-agent/api"
	"github.com/5g-empower/empower-enb-agent/buffer"
	"github.com/5g-empower/empower-enb-agent/config"
	"github.com/5g-empower/empower-enb-agent/logging"
	"github.com/5g-empower/empower-enb-agent/protocol"
	"github.com/5g-empower/empower-enb-agent/tlv"
	"github.com/5g-empower/empower-enb-agent/transport/tcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the agent side: accept one controller connection and answer requests",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultFramerConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	framer := tcp.New(cfg.ListenAddress, cfg.Port)
	if err := framer.OpenListening(); err != nil {
		return err
	}
	defer framer.Close()
	logging.Sugar.Infof("listening on %s:%d", cfg.ListenAddress, cfg.Port)

	for {
		ready, err := framer.Poll(cfg.PollDelay)
		if err != nil {
			logging.Sugar.Errorw("poll failed", "error", err)
			continue
		}
		if !ready {
			continue
		}

		rx := buffer.NewOwning(4096)
		frame, err := framer.ReadMessage(rx)
		if err != nil {
			logging.Sugar.Errorw("read_message failed", "error", err)
			continue
		}
		if frame.Empty() {
			continue
		}

		dec, err := protocol.NewMessageDecoder(frame)
		if err != nil {
			logging.Sugar.Warnw("dropping malformed frame", "error", err)
			continue
		}
		ec, _ := dec.Header().EntityClass()
		mc, _ := dec.Header().MessageClass()
		logging.Sugar.Infow("request received", "entity_class", ec, "message_class", mc)

		// The reply carries one BINARY_DATA TLV (the request's payload when
		// it has one), so it is long enough for NewMessageDecoder.
		payload := &tlv.BinaryDataValue{}
		if dec.NextType() == tlv.BinaryData {
			if err := dec.Get(payload); err != nil {
				logging.Sugar.Warnw("dropping malformed frame", "error", err)
				continue
			}
		}

		tx := buffer.NewOwning(protocol.MinDecoderSize + len(payload.Data))
		enc, err := protocol.NewMessageEncoder(tx)
		if err != nil {
			logging.Sugar.Errorw("encode response failed", "error", err)
			continue
		}
		if err := enc.Header().MessageClass(api.ResponseSuccess); err != nil {
			logging.Sugar.Errorw("encode response failed", "error", err)
			continue
		}
		if err := enc.Header().EntityClass(ec); err != nil {
			logging.Sugar.Errorw("encode response failed", "error", err)
			continue
		}
		if _, err := enc.Add(payload); err != nil {
			logging.Sugar.Errorw("encode response failed", "error", err)
			continue
		}
		if err := enc.End(); err != nil {
			logging.Sugar.Errorw("encode response failed", "error", err)
			continue
		}
		reply, err := enc.Data()
		if err != nil {
			logging.Sugar.Errorw("encode response failed", "error", err)
			continue
		}
		if _, err := framer.WriteMessage(reply); err != nil {
			logging.Sugar.Errorw("write_message failed", "error", err)
		}
	}
}
