package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/5g-empower/empower-enb-agent/api"
	"github.com/5g-empower/empower-enb-agent/buffer"
	"github.com/5g-empower/empower-enb-agent/config"
	"github.com/5g-empower/empower-enb-agent/logging"
	"github.com/5g-empower/empower-enb-agent/protocol"
	"github.com/5g-empower/empower-enb-agent/tlv"
	"github.com/5g-empower/empower-enb-agent/transport/tcp"
)

var dialPayload string

var dialCmd = &cobra.Command{
	Use:   "dial",
	Short: "Run the controller side: connect once, send an ECHO GET, print the response",
	RunE:  runDial,
}

func init() {
	dialCmd.Flags().StringVar(&dialPayload, "payload", "ping", "payload carried in the ECHO GET request's BINARY_DATA TLV")
	rootCmd.AddCommand(dialCmd)
}

func runDial(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultFramerConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	framer := tcp.New(cfg.ClientAddress, cfg.Port)
	for {
		ok, err := framer.OpenClient()
		if err != nil {
			return err
		}
		if ok {
			break
		}
		logging.Sugar.Infow("connect not yet accepted, retrying", "address", cfg.ClientAddress, "port", cfg.Port)
		time.Sleep(cfg.PollDelay)
	}
	defer framer.Close()

	tx := buffer.NewOwning(256)
	enc, err := protocol.NewMessageEncoder(tx)
	if err != nil {
		return err
	}
	if err := enc.Header().MessageClass(api.RequestGet); err != nil {
		return err
	}
	if err := enc.Header().EntityClass(api.EchoService); err != nil {
		return err
	}
	if _, err := enc.Add(&tlv.BinaryDataValue{Data: []byte(dialPayload)}); err != nil {
		return err
	}
	if err := enc.End(); err != nil {
		return err
	}
	req, err := enc.Data()
	if err != nil {
		return err
	}
	if _, err := framer.WriteMessage(req); err != nil {
		return err
	}

	rx := buffer.NewOwning(4096)
	resp, err := framer.ReadMessage(rx)
	if err != nil {
		return err
	}
	if resp.Empty() {
		return fmt.Errorf("no response received")
	}
	dec, err := protocol.NewMessageDecoder(resp)
	if err != nil {
		return err
	}
	isSuccess, err := dec.IsSuccess()
	if err != nil {
		return err
	}
	fmt.Printf("response: success=%v\n", isSuccess)
	return nil
}
