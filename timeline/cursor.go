package timeline

// Invertible is the subset of a log the clock coordinator drives on inversion
type Invertible interface {
	Invert()
}

// Cursor is the playback contract shared by Recording and Schedule
// Replay consumers are written once against it and work with either storage strategy
type Cursor[T any] interface {
	Invertible

	Append(data T)
	AppendAtStart(data T)
	AppendAtEnd(data T)

	Get(time int) T
	GetAt(minute, second, tick int) T
	Next() T
	Previous() T
	Seek(offset int) T

	Reset()
	SetEndPoint(inverted bool)
	SetStartPoint(inverted bool)
	StartPlaybackAtBeginning()
	StartPlaybackAtEnding()

	Inverted() bool
	StartOfRecording() bool
	EndOfRecording() bool
	Time() int
	StartPoint() int
	EndPoint() int
}

var (
	_ Cursor[int]  = (*Recording[int])(nil)
	_ Cursor[bool] = (*Schedule[bool])(nil)
)
