package memutils

import "math"

// Statistics summarizes how the units of one or more managed spaces are divided between live allocations
// and free space
type Statistics struct {
	SpaceCount      int
	AllocationCount int
	TotalUnits      int
	AllocationUnits int
}

func (s *Statistics) Clear() {
	s.SpaceCount = 0
	s.AllocationCount = 0
	s.TotalUnits = 0
	s.AllocationUnits = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.SpaceCount += other.SpaceCount
	s.AllocationCount += other.AllocationCount
	s.TotalUnits += other.TotalUnits
	s.AllocationUnits += other.AllocationUnits
}

// FreeUnits is the number of units not held by any allocation
func (s *Statistics) FreeUnits() int {
	return s.TotalUnits - s.AllocationUnits
}

type DetailedStatistics struct {
	Statistics
	UnusedRangeCount   int
	AllocationSizeMin  int
	AllocationSizeMax  int
	UnusedRangeSizeMin int
	UnusedRangeSizeMax int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.UnusedRangeCount = 0
	s.AllocationSizeMin = math.MaxInt
	s.AllocationSizeMax = 0
	s.UnusedRangeSizeMin = math.MaxInt
	s.UnusedRangeSizeMax = 0
}

func (s *DetailedStatistics) AddUnusedRange(size int) {
	s.UnusedRangeCount++

	if size < s.UnusedRangeSizeMin {
		s.UnusedRangeSizeMin = size
	}

	if size > s.UnusedRangeSizeMax {
		s.UnusedRangeSizeMax = size
	}
}

func (s *DetailedStatistics) AddAllocation(size int) {
	s.AllocationCount++
	s.AllocationUnits += size

	if size < s.AllocationSizeMin {
		s.AllocationSizeMin = size
	}

	if size > s.AllocationSizeMax {
		s.AllocationSizeMax = size
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.UnusedRangeCount += other.UnusedRangeCount

	if other.UnusedRangeSizeMin < s.UnusedRangeSizeMin {
		s.UnusedRangeSizeMin = other.UnusedRangeSizeMin
	}

	if other.UnusedRangeSizeMax > s.UnusedRangeSizeMax {
		s.UnusedRangeSizeMax = other.UnusedRangeSizeMax
	}

	if other.AllocationSizeMin < s.AllocationSizeMin {
		s.AllocationSizeMin = other.AllocationSizeMin
	}

	if other.AllocationSizeMax > s.AllocationSizeMax {
		s.AllocationSizeMax = other.AllocationSizeMax
	}
}

// Fragmentation returns how much of the free space is unusable for a request as large as all of it:
// 0 when the free units form a single range (or there are none), approaching 1 as the largest free range
// shrinks relative to the total free units.
func (s *DetailedStatistics) Fragmentation() float64 {
	free := s.FreeUnits()
	if free <= 0 || s.UnusedRangeCount == 0 {
		return 0
	}

	return 1 - float64(s.UnusedRangeSizeMax)/float64(free)
}

// SampleStatistics accumulates repeated observations of a single quantity, such as the length of a
// free list at every allocation attempt, keeping only the running count, sum and sum of squares.
type SampleStatistics struct {
	Count      int64
	Sum        int64
	SumSquares int64
}

func (s *SampleStatistics) Clear() {
	s.Count = 0
	s.Sum = 0
	s.SumSquares = 0
}

func (s *SampleStatistics) AddSample(value int) {
	v := int64(value)
	s.Count++
	s.Sum += v
	s.SumSquares += v * v
}

func (s *SampleStatistics) AddSampleStatistics(other *SampleStatistics) {
	s.Count += other.Count
	s.Sum += other.Sum
	s.SumSquares += other.SumSquares
}

// Mean returns Sum/Count, or 0 if nothing was sampled
func (s *SampleStatistics) Mean() float64 {
	if s.Count == 0 {
		return 0
	}

	return float64(s.Sum) / float64(s.Count)
}

// Variance returns SumSquares/Count - Mean². Rounding can push a constant series slightly below
// zero, so the result is clamped at 0.
func (s *SampleStatistics) Variance() float64 {
	if s.Count == 0 {
		return 0
	}

	mean := s.Mean()
	variance := float64(s.SumSquares)/float64(s.Count) - mean*mean
	if variance < 0 {
		return 0
	}

	return variance
}

func (s *SampleStatistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}
