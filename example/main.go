package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	tcpchina "github.com/fastnet/tcp-china"
	"github.com/fastnet/tcp-china/internal/utils"
	"github.com/fastnet/tcp-china/logging"
	"github.com/fastnet/tcp-china/metrics"
	"github.com/fastnet/tcp-china/qlog"
)

func main() {
	rounds := flag.Int("rounds", 200, "number of RTT rounds to simulate")
	rtt := flag.Duration("rtt", 40*time.Millisecond, "base round trip time")
	lossEvery := flag.Int("loss-every", 50, "drop one packet every n rounds (0 disables losses)")
	qlogPath := flag.String("qlog", "", "write a qlog trace to this file")
	metricsAddr := flag.String("metrics", "", "serve prometheus metrics on this address")
	flag.Parse()

	var tracers []*logging.ConnectionTracer
	if *qlogPath != "" {
		f, err := os.Create(*qlogPath)
		if err != nil {
			log.Fatal(err)
		}
		tracers = append(tracers, qlog.NewConnectionTracer(
			utils.NewBufferedWriteCloser(bufio.NewWriter(f), f),
			"example",
		))
	}
	if *metricsAddr != "" {
		tracers = append(tracers, metrics.DefaultConnectionTracer())
		http.Handle("/metrics", promhttp.Handler())
		go func() { log.Fatal(http.ListenAndServe(*metricsAddr, nil)) }()
	}

	conn := tcpchina.NewConn(&tcpchina.Config{
		Tracer: logging.NewMultiplexedConnectionTracer(tracers...),
		Logger: utils.DefaultLogger.WithPrefix("example"),
	})

	var pn tcpchina.PacketNumber
	for round := 1; round <= *rounds; round++ {
		for conn.CanSend() {
			conn.OnPacketSent(1)
		}
		if *lossEvery > 0 && round%*lossEvery == 0 {
			pn++
			conn.OnPacketLost(pn)
		}
		acked := conn.SegmentsInFlight()
		pn++
		conn.OnAckReceived(pn, acked, *rtt)
		fmt.Printf("round %3d: cwnd=%6d ssthresh=%10d srtt=%s slow_start=%t\n",
			round,
			conn.CongestionWindow(),
			conn.SlowStartThreshold(),
			conn.RTTStats().SmoothedRTT(),
			conn.InSlowStart(),
		)
	}
	conn.Close(errors.New("simulation finished"))
}
