// Package rpc serves the four core entry points, and full runs, over gRPC.
// Messages are google.protobuf.Struct values whose shape is fixed by the
// payload types in this package.
package rpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/danielpatrickdp/eres666/internal/check"
	"github.com/danielpatrickdp/eres666/internal/formula"
	"github.com/danielpatrickdp/eres666/internal/ledger"
	"github.com/danielpatrickdp/eres666/internal/measure"
	"github.com/danielpatrickdp/eres666/internal/pipeline"
	"github.com/danielpatrickdp/eres666/internal/quality"
)

// #region service-interface
// VerifierServer is the handler set registered under ServiceName.
type VerifierServer interface {
	SimulateMeasurements(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EvaluateFormulas(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ComputeCipher(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AggregateQuality(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Run(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// Recorder stores run provenance. *ledger.Store satisfies it.
type Recorder interface {
	Record(ledger.Run) (ledger.Run, error)
}

// #endregion service-interface

// #region server
// Server implements VerifierServer on top of the pipeline package.
type Server struct {
	logger   *zap.Logger
	recorder Recorder
	checker  *check.Harness
}

// NewServer creates a server. recorder may be nil.
func NewServer(logger *zap.Logger, recorder Recorder) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		logger:   logger,
		recorder: recorder,
		checker:  check.NewHarness(check.DefaultConfig()),
	}
}

// SimulateMeasurements decodes measure.Params and returns a ReadingsReply.
func (s *Server) SimulateMeasurements(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var p measure.Params
	if err := fromStruct(req, &p); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	readings, err := pipeline.SimulateMeasurements(p.MassKg, p.BioSignalStrength, p.HueDeg, p.Value, p.Chroma)
	if err != nil {
		return nil, toStatus(err)
	}
	return reply(ReadingsReply{Readings: readings})
}

// EvaluateFormulas decodes formula.Inputs and returns formula.Outputs.
func (s *Server) EvaluateFormulas(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in formula.Inputs
	if err := fromStruct(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	out, err := pipeline.EvaluateFormulas(in)
	if err != nil {
		return nil, toStatus(err)
	}
	return reply(out)
}

// ComputeCipher takes an empty request and returns a CipherReply.
func (s *Server) ComputeCipher(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := fromStruct(req, &empty{}); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	score := pipeline.ComputeCipher()
	return reply(CipherReply{
		TraceMagnitude: score.TraceMagnitude,
		Mod216:         score.Mod216,
		Signature:      score.Signature(),
	})
}

// AggregateQuality takes an empty request and returns a QualityReply.
func (s *Server) AggregateQuality(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := fromStruct(req, &empty{}); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return reply(QualityReply{
		Quality:    pipeline.AggregateQuality(),
		Categories: quality.Catalog(),
	})
}

// Run decodes a pipeline.Scenario, runs it and returns the pipeline.Result.
// Fields missing from the request take their DefaultScenario values.
func (s *Server) Run(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sc := pipeline.DefaultScenario()
	if err := fromStruct(req, &sc); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, runErr := pipeline.Run(sc)
	var chk *check.Result
	if runErr == nil {
		c := s.checker.Run(res)
		chk = &c
	}
	s.record(sc, &res, chk, runErr)

	if runErr != nil {
		return nil, toStatus(runErr)
	}
	return reply(res)
}

func (s *Server) record(sc pipeline.Scenario, res *pipeline.Result, chk *check.Result, runErr error) {
	if s.recorder == nil {
		return
	}
	if runErr != nil {
		res = nil
	}
	run, err := ledger.NewRun("rpc", sc, res, chk, runErr)
	if err == nil {
		run, err = s.recorder.Record(run)
	}
	if err != nil {
		s.logger.Warn("ledger record failed", zap.Error(err))
		return
	}
	s.logger.Debug("run recorded", zap.String("run_id", run.RunID), zap.String("decision", run.Decision))
}

func reply(v any) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		return nil, toStatus(err)
	}
	return out, nil
}

// #endregion server

// #region registration
type unaryCall func(VerifierServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := &structpb.Struct{}
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(VerifierServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(VerifierServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes the Verifier service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VerifierServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(methodSimulate, VerifierServer.SimulateMeasurements),
		unary(methodEvaluate, VerifierServer.EvaluateFormulas),
		unary(methodCipher, VerifierServer.ComputeCipher),
		unary(methodQuality, VerifierServer.AggregateQuality),
		unary(methodRun, VerifierServer.Run),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "eres/v1/verifier",
}

// Register installs the verifier and a health service reporting SERVING.
func Register(gs *grpc.Server, srv VerifierServer) *health.Server {
	gs.RegisterService(&ServiceDesc, srv)

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)
	return hs
}

// LoggingInterceptor logs every unary call with its status code and latency.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			logger.Info("rpc failed", append(fields, zap.Error(err))...)
		} else {
			logger.Debug("rpc served", fields...)
		}
		return resp, err
	}
}

// #endregion registration
