package utils

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Balance
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				kMin, kMax := pm.GetBucketRange(np)
				histo[kMax-kMin]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 2000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Contiguous cover of [0, MaxIndex)
		pm := NewPartitionMap(3, 50)
		assert.Equal(t, 0, pm.Partitions[0][0])
		for np := 1; np < pm.ParallelDegree; np++ {
			assert.Equal(t, pm.Partitions[np-1][1], pm.Partitions[np][0])
		}
		assert.Equal(t, 50, pm.Partitions[2][1])
		assert.Equal(t, 50, pm.MaxIndex)
	}
}

func TestSetParallelDegree(t *testing.T) {
	assert.Equal(t, 1, SetParallelDegree(1, 50))
	assert.Equal(t, min(runtime.NumCPU(), 50), SetParallelDegree(0, 50))
	assert.Equal(t, 1, SetParallelDegree(8, 1))
	assert.Equal(t, 1, SetParallelDegree(-3, 0))
}
