package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/danielpatrickdp/eres666/internal/cipher"
	"github.com/danielpatrickdp/eres666/internal/formula"
	"github.com/danielpatrickdp/eres666/internal/measure"
	"github.com/danielpatrickdp/eres666/internal/pipeline"
)

// #region client-struct
// Client wraps a gRPC connection to a Verifier server.
type Client struct {
	conn *grpc.ClientConn
	cc   grpc.ClientConnInterface
}

// #endregion client-struct

// #region constructor
// NewClient connects to the verifier at addr.
func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, cc: conn}, nil
}

// NewClientWithConn creates a Client over an existing connection.
func NewClientWithConn(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Close shuts down the connection if the client owns it.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion constructor

// #region calls
func (c *Client) call(ctx context.Context, method string, req any, out any) error {
	in, err := toStruct(req)
	if err != nil {
		return err
	}
	resp := &structpb.Struct{}
	if err := c.cc.Invoke(ctx, fullMethod(method), in, resp); err != nil {
		return fmt.Errorf("%s rpc: %w", method, fromStatus(err))
	}
	if err := fromStruct(resp, out); err != nil {
		return fmt.Errorf("%s rpc: %w", method, err)
	}
	return nil
}

// SimulateMeasurements runs the three simulators remotely.
func (c *Client) SimulateMeasurements(ctx context.Context, p measure.Params) ([3]measure.Reading, error) {
	var out ReadingsReply
	if err := c.call(ctx, methodSimulate, p, &out); err != nil {
		return [3]measure.Reading{}, err
	}
	return out.Readings, nil
}

// EvaluateFormulas runs the formula stages remotely.
func (c *Client) EvaluateFormulas(ctx context.Context, in formula.Inputs) (formula.Outputs, error) {
	var out formula.Outputs
	if err := c.call(ctx, methodEvaluate, in, &out); err != nil {
		return formula.Outputs{}, err
	}
	return out, nil
}

// ComputeCipher fetches the cipher score and its signature.
func (c *Client) ComputeCipher(ctx context.Context) (cipher.Score, string, error) {
	var out CipherReply
	if err := c.call(ctx, methodCipher, empty{}, &out); err != nil {
		return cipher.Score{}, "", err
	}
	return cipher.Score{TraceMagnitude: out.TraceMagnitude, Mod216: out.Mod216}, out.Signature, nil
}

// AggregateQuality fetches the overall rating and its categories.
func (c *Client) AggregateQuality(ctx context.Context) (QualityReply, error) {
	var out QualityReply
	if err := c.call(ctx, methodQuality, empty{}, &out); err != nil {
		return QualityReply{}, err
	}
	return out, nil
}

// Run executes a full scenario remotely.
func (c *Client) Run(ctx context.Context, s pipeline.Scenario) (pipeline.Result, error) {
	var out pipeline.Result
	if err := c.call(ctx, methodRun, s, &out); err != nil {
		return pipeline.Result{}, err
	}
	return out, nil
}

// #endregion calls
