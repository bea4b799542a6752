package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"hash/crc32"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/memkit/memlink/region"
)

var (
	file   = flag.String("file", "", "File to inspect")
	elem   = flag.Int("elem", 1, "Element size in bytes")
	offset = flag.Int("offset", 0, "Byte offset of the hexdump window")
	dump   = flag.Int("dump", 0, "Number of bytes to hexdump (0 disables)")
)

type report struct {
	File     string `json:"file"`
	Size     int    `json:"size"`
	ElemSize int    `json:"elem_size"`
	Elems    int    `json:"elems"`
	Tail     int    `json:"tail_bytes"`
	Checksum uint32 `json:"crc32"`
}

func main() {
	flag.Parse()
	if *file == "" {
		logrus.Fatal("no file given, use -file")
	}

	r, err := region.Open(*file, 0, true, os.ModePerm)
	if err != nil {
		logrus.Fatalf("failed to open region: %v", err)
	}
	defer r.Close()

	lnk := r.Link()
	if err := lnk.SetElemSize(*elem); err != nil {
		logrus.Fatalf("invalid element size %d: %v", *elem, err)
	}

	rep := report{
		File:     r.Name(),
		Size:     lnk.Size(),
		ElemSize: lnk.ElemSize(),
		Elems:    lnk.Size() / lnk.ElemSize(),
		Tail:     lnk.Size() % lnk.ElemSize(),
		Checksum: crc32.Checksum(lnk.Bytes(), crc32.IEEETable),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(rep)

	if *dump > 0 {
		from, to := *offset, *offset+*dump
		if from < 0 || from > lnk.Size() {
			logrus.Fatalf("offset %d outside region of %d bytes", from, lnk.Size())
		}
		if to > lnk.Size() {
			to = lnk.Size()
		}
		os.Stdout.WriteString(hex.Dump(lnk.Slice(from, to)))
	}
}
