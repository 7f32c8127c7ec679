package transcript

type ReaderMock struct {
	MetadataFake func(file string) (Transcript, error)
}

func NewReaderMock() ReaderMock {
	return ReaderMock{
		MetadataFake: func(file string) (Transcript, error) {
			return Transcript{}, nil
		},
	}
}

func (r ReaderMock) Metadata(file string) (Transcript, error) {
	return r.MetadataFake(file)
}
