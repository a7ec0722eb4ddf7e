//go:build gomock || generate

package tcpchina

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package tcpchina -destination mock_send_algorithm_test.go github.com/fastnet/tcp-china/internal/congestion SendAlgorithmWithDebugInfos"
