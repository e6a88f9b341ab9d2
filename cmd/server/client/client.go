// Package client provides commands that exercise a running arena server over gRPC
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/wallet-arena/internal/entities"
	"github.com/KirkDiggler/wallet-arena/internal/handlers/arena/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the arena service",
	Long:  `Client commands make real gRPC requests against a running arena server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(fightCmd)
	ClientCmd.AddCommand(getBattleCmd)
	ClientCmd.AddCommand(verifyCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createArenaClient creates an arena service client
func createArenaClient() (v1alpha1.ArenaServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewArenaServiceClient(conn), cleanup, nil
}

type unaryCall func(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)

// invoke encodes req, calls the method and decodes the reply into resp
func invoke(call unaryCall, req, resp any) error {
	in, err := v1alpha1.ToStruct(req)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := call(ctx, in)
	if err != nil {
		return err
	}
	return v1alpha1.FromStruct(out, resp)
}

func readSnapshot(path string) (entities.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Snapshot{}, fmt.Errorf("failed to read fighter %s: %w", path, err)
	}
	return entities.ParseSnapshotYAML(data)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
