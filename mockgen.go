//go:build gomock || generate

package ingress

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package ingress -self_package github.com/quic-go/ingress -destination mock_transport_test.go github.com/quic-go/ingress Transport"
//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package ingress -self_package github.com/quic-go/ingress -destination mock_connection_registry_test.go github.com/quic-go/ingress ConnectionRegistry"
//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package ingress -self_package github.com/quic-go/ingress -destination mock_connection_id_allocator_test.go github.com/quic-go/ingress ConnectionIDAllocator"
//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package ingress -self_package github.com/quic-go/ingress -destination mock_retry_token_service_test.go github.com/quic-go/ingress RetryTokenService"
//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package ingress -self_package github.com/quic-go/ingress -destination mock_packet_handler_test.go github.com/quic-go/ingress PacketHandler"

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package ingress -self_package github.com/quic-go/ingress -destination mock_packet_codec_test.go github.com/quic-go/ingress PacketCodec"
type PacketCodec = packetCodec
