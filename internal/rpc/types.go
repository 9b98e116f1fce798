package rpc

import (
	"github.com/danielpatrickdp/eres666/internal/measure"
	"github.com/danielpatrickdp/eres666/internal/quality"
)

// #region service
// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "eres.v1.Verifier"

const (
	methodSimulate  = "SimulateMeasurements"
	methodEvaluate  = "EvaluateFormulas"
	methodCipher    = "ComputeCipher"
	methodQuality   = "AggregateQuality"
	methodRun       = "Run"
	errorInfoDomain = "eres666"
)

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// #endregion service

// #region payloads
// Payloads travel as google.protobuf.Struct; these types fix their shape.

// ReadingsReply is the SimulateMeasurements response.
type ReadingsReply struct {
	Readings [3]measure.Reading `json:"readings"`
}

// CipherReply is the ComputeCipher response.
type CipherReply struct {
	TraceMagnitude float64 `json:"trace_magnitude"`
	Mod216         float64 `json:"mod_216"`
	Signature      string  `json:"signature"`
}

// QualityReply is the AggregateQuality response.
type QualityReply struct {
	Quality    float64            `json:"quality"`
	Categories []quality.Category `json:"categories"`
}

type empty struct{}

// #endregion payloads
