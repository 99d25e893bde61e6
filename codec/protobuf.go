package codec

import "google.golang.org/protobuf/proto"

// Protobuf serializes proto messages with google.golang.org/protobuf.
// Decode needs a fresh message to unmarshal into, so construction takes a
// constructor for the concrete type:
//
//	codec.NewProtobuf(func() *mypb.User { return &mypb.User{} })
//
// Register it under an extension of your choice to store proto-typed
// entries, e.g. r.Register("pb", codec.NewProtobuf(...)).
type Protobuf[M proto.Message] struct {
	newMsg func() M
}

func NewProtobuf[M proto.Message](ctor func() M) Protobuf[M] {
	return Protobuf[M]{newMsg: ctor}
}

func (c Protobuf[M]) Encode(v M) ([]byte, error) {
	return proto.Marshal(v)
}

func (c Protobuf[M]) Decode(b []byte) (M, error) {
	m := c.newMsg()
	err := proto.Unmarshal(b, m)
	return m, err
}
