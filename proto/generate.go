// Package proto holds the service definitions. Run go generate here to
// regenerate gen/proto from the .proto sources (requires protoc with the
// protoc-gen-go and protoc-gen-go-grpc plugins on PATH).
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative compliance/v1/compliance.proto
