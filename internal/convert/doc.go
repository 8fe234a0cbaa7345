// Package convert translates between PAML values and other data formats:
// JSON (json-iterator), YAML (yaml.v3), TOML (BurntSushi/toml) and
// google.protobuf.Value (structpb) in wire or JSON form.
//
// Decoders keep key order wherever the source format records it and report
// duplicate keys with the DUPLICATE_KEY code. Protobuf structs are
// unordered and come out sorted. Errors are *pamlerror.Error values.
package convert
