package sim

import (
	"math"
	"math/big"
	"time"

	"github.com/ALTree/bigfloat"
)

// tcpHeaderBytes is the per-packet TCP/IP header overhead the original
// charges against every MSS-sized segment of a transfer.
const tcpHeaderBytes = 40

// transferSizeBits returns the number of bits on the wire needed to carry
// nbytes of payload, once packetized into segments of size mss and given a
// header overhead per segment.
func transferSizeBits(nbytes, mss int) float64 {
	numPackets := math.Ceil(float64(nbytes) / float64(mss))
	return 8 * (float64(nbytes) + numPackets*tcpHeaderBytes)
}

func rttSeconds(rttMS int) float64 {
	return float64(rttMS) / 1000.0
}

// throughputNoLoss computes the maximum TCP throughput assuming no packet
// loss: the window-limited rate, capped by the link's bandwidth.
func throughputNoLoss(cfg ChannelConfig) float64 {
	rtt := rttSeconds(cfg.RTT)
	windowBits := 8 * float64(cfg.WindowSize)
	maxThroughput := windowBits / rtt
	return math.Min(maxThroughput, float64(cfg.Bandwidth))
}

// sqrtHighPrecision computes sqrt(3/(2*loss)) using arbitrary-precision
// floats. The Mathis-model loss term blows up as loss approaches zero, so
// computing it at high precision (rather than plain float64 math.Sqrt)
// avoids losing bits when loss is very small but nonzero.
func sqrtHighPrecision(loss float64) float64 {
	arg := new(big.Float).SetPrec(200).Quo(big.NewFloat(3.0), big.NewFloat(2.0*loss))
	root := bigfloat.Sqrt(arg)
	v, _ := root.Float64()
	return v
}

// throughputWithLoss computes TCP throughput under the Mathis et al. model
// for a nonzero packet loss rate.
func throughputWithLoss(cfg ChannelConfig) float64 {
	mss := float64(cfg.MSS)
	lossTerm := sqrtHighPrecision(cfg.PacketLoss)
	rtt := rttSeconds(cfg.RTT)
	return lossTerm * (8 * mss / rtt)
}

// ComputeRecvTime computes the simulated delivery delay for a packet of n
// bytes under cfg. Loopback channels deliver instantly; everything else
// follows the TCP throughput model of §4.13: size accounting for
// per-segment header overhead, divided by the estimated achievable
// throughput (window/bandwidth limited, and further capped by the Mathis
// loss-rate estimate when packet loss is configured), plus one RTT.
func ComputeRecvTime(cfg ChannelConfig, n int) time.Duration {
	if cfg.Loopback {
		return 0
	}

	totalBits := transferSizeBits(n, cfg.MSS)
	throughput := throughputNoLoss(cfg)
	if cfg.PacketLoss > 0 {
		throughput = math.Min(throughput, throughputWithLoss(cfg))
	}

	seconds := totalBits/throughput + rttSeconds(cfg.RTT)
	return time.Duration(seconds * float64(time.Second))
}
