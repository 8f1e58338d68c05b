// Package investapi contains Go bindings for the T-Invest public API
// protobuf contract (tinkoff.public.invest.api.contract.v1).
//
// The bindings are hand-maintained and cover the message and service
// surface the SDK exposes. Messages use the legacy struct-tag form and
// are bridged to the protobuf v2 runtime through protoadapt, so they
// marshal with the standard gRPC proto codec. Client and server stubs
// follow the protoc-gen-go-grpc call shape: unary calls go through
// ClientConnInterface.Invoke, streams through NewStream with the
// descriptors registered in each service's ServiceDesc.
//
// Field numbers and enum values match the upstream contract. Fields the
// SDK does not surface are simply absent here; proto3 semantics keep
// them compatible on the wire.
package investapi
