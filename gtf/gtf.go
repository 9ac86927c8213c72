//Package gtf implements a simple compressed format to archive generated
//geometries. Each frame is one candidate geometry for the same molecule,
//coordinates are stored as scaled integers, one atom per line, and the
//whole stream is compressed. The compression method is selected from the
//last letter of the file name: 'l' for LZW, 'z' for gzip, 'r' for flate
//and anything else for zstd.
package gtf

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/gogeom/v3"
)

const (
	lzwLitwidth int = 8
)

//Write!
type GtfW struct {
	f         *os.File
	h         io.WriteCloser
	natoms    int
	filename  string
	writeable bool
	prec      int
}

func (G *GtfW) Close() {
	if G == nil {
		return
	}
	if G.writeable {
		G.h.Close()
		G.f.Close()
	}
	G.writeable = false
}

//Len returns the number of atoms per geometry.
func (G *GtfW) Len() int {
	return G.natoms
}

//WNext writes the given coordinates as the next geometry of the archive.
func (G *GtfW) WNext(coord *v3.Matrix) error {
	if !G.writeable {
		return Error{ArchiveUnIniWrite, G.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return Error{NilCoordinates, G.filename, []string{"WNext"}, true}
	}
	v := coord.NVecs()
	if v != G.natoms {
		return Error{fmt.Sprintf("%d coordinates given, but %d expected", v, G.natoms), G.filename, []string{"WNext"}, true}
	}
	var temp [3]int
	var floats [3]float64
	for i := 0; i < v; i++ {
		floats[0] = coord.At(i, 0)
		floats[1] = coord.At(i, 1)
		floats[2] = coord.At(i, 2)
		G.h.Write([]byte(coordsEncode(floats, temp, G.prec)))
	}
	G.h.Write([]byte("*\n"))
	return nil
}

//NewWriter opens a gtf archive for writing geometries of natoms atoms
//each. The header map is written as key=value lines, a "prec" key sets
//the number of decimals stored (2 by default). The compression level, if
//given, only applies to the flate and gzip methods.
func NewWriter(name string, natoms int, header map[string]string, compressionLevel ...int) (*GtfW, error) {
	var level int = 9
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	G := new(GtfW)
	var err error
	G.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	format := strings.ToLower(name)[len(name)-1]
	zwriter := func(a io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(a, level)
	}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, level) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch format {
	case 'l':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return lzw.NewWriter(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		AnyNewWriter = gzipwriter
	case 'r':
		AnyNewWriter = zwriter
	default:
		AnyNewWriter = zstdwriter
	}
	G.h, err = AnyNewWriter(G.f)
	if err != nil {
		return nil, Error{"Can't open for compression " + err.Error(), name, []string{"NewWriter"}, true}
	}
	G.natoms = natoms
	G.filename = name
	G.writeable = true
	G.prec = 2 //the default
	if header != nil {
		if p, ok := header["prec"]; ok && p != "2" {
			prec, err := strconv.Atoi(p)
			if err == nil {
				G.prec = prec
			}
		}
		headerstr := ""
		for k, v := range header {
			headerstr += fmt.Sprintf("%s=%v\n", k, v)
		}
		G.h.Write([]byte(headerstr))
	}
	G.h.Write([]byte(fmt.Sprintf("** %d\n", G.natoms)))
	return G, nil
}

//Read!
type GtfR struct {
	f            *os.File
	lzw          io.ReadCloser
	h            *bufio.Reader
	intermediate *bufio.Reader
	natoms       int
	filename     string
	prec         int
	readable     bool
}

//*zstd.Decoder doesn't implement io.ReadCloser, as its Close returns
//nothing, so it gets wrapped here.
type stdql struct {
	closeql func()
	*zstd.Decoder
}

func (s stdql) Close() error {
	s.closeql()
	return nil
}

func coordsEncode(f [3]float64, temp [3]int, prec int) string {
	p := 100.0
	if prec > 0 && prec != 2 {
		p = math.Pow(10.0, float64(prec))
	}
	for i, v := range f {
		temp[i] = int(math.RoundToEven(v * p))
	}
	return fmt.Sprintf("%d %d %d\n", temp[0], temp[1], temp[2])
}

func coordsDecode(str string, temp *[3]float64, prec int) error {
	p := 100.0
	if prec > 0 && prec != 2 {
		p = math.Pow(10.0, float64(prec))
	}
	s := strings.Fields(str)
	if len(s) != 3 {
		return fmt.Errorf("Ill formated coordinates line in gtf: %s", str)
	}
	for i, v := range s {
		f, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("Can't parse coordinate %d (%s). Error: %s", i, v, err.Error())
		}
		temp[i] = float64(f) / p
	}
	return nil
}

//New opens a gtf archive for reading, and returns a pointer to the
//handle, a map with the metadata (or nil, if no metadata is found)
//and error or nil.
func New(name string) (*GtfR, map[string]string, error) {
	G := new(GtfR)
	G.natoms = -1 //just so we know if things don't work
	m := make(map[string]string)
	var err error
	G.filename = name
	G.f, err = os.Open(G.filename)
	if err != nil {
		return nil, nil, err
	}
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	zreader := func(a io.Reader) (io.ReadCloser, error) {
		return flate.NewReader(a), nil
	}
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		return &stdql{r.Close, r}, err
	}
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	switch strings.ToLower(name)[len(name)-1] {
	case 'l':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return lzw.NewReader(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		AnyNewReader = gzreader
	case 'r':
		AnyNewReader = zreader
	default:
		AnyNewReader = zstdreader
	}
	G.intermediate = bufio.NewReader(G.f)
	G.lzw, err = AnyNewReader(G.intermediate)
	if err != nil {
		return nil, nil, Error{"Can't read header " + err.Error(), G.filename, []string{"New"}, true}
	}
	G.h = bufio.NewReader(G.lzw)
	for {
		str, err := G.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"Can't read header " + err.Error(), G.filename, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.Contains(str, "**") {
			nat := strings.Fields(str)
			if len(nat) < 2 {
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from '%s'", str), G.filename, []string{"New"}, true}
			}
			G.natoms, err = strconv.Atoi(nat[1])
			if err != nil {
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from '%s': %s", nat[1], err.Error()), G.filename, []string{"New"}, true}
			}
			break
		}
		kv := strings.Split(str, "=")
		if len(kv) != 2 {
			return nil, nil, Error{"Malformed header line: " + str, G.filename, []string{"New"}, true}
		}
		m[kv[0]] = kv[1]
	}
	G.readable = true
	if p, ok := m["prec"]; ok && p != "2" {
		prec, err := strconv.Atoi(p)
		if err == nil {
			G.prec = prec
		}
	}
	if len(m) == 0 {
		m = nil
	}
	return G, m, nil
}

//Readable returns true if it is possible to call Next on the handle.
func (G *GtfR) Readable() bool {
	return G.readable
}

//Next puts in the given matrix the coordinates for the next geometry of
//the archive. If c is nil, the frame is read and checked, but discarded.
//If the error implements LastFrameError, the archive simply ended, and
//nothing bad happened.
func (G *GtfR) Next(c *v3.Matrix) error {
	if !G.readable {
		return Error{ArchiveUnIniRead, G.filename, []string{"Next"}, true}
	}
	var temp [3]float64
	for i := 0; i < G.natoms; i++ {
		b, err := G.h.ReadBytes('\n')
		if err != nil {
			// EOF should only happen when reading the first atom
			if err == io.EOF && i == 0 {
				G.Close()
				return newlastFrameError(G.filename, "Next")
			}
			return Error{message: err.Error(), filename: G.filename, critical: true}
		}
		err = coordsDecode(string(b[:len(b)-1]), &temp, G.prec)
		if err != nil {
			return Error{message: err.Error(), filename: G.filename, critical: true}
		}
		if c == nil {
			continue
		}
		for j, v := range temp {
			c.Set(i, j, v)
		}
	}
	s, err := G.h.ReadString('\n')
	if err != nil {
		return Error{"Can't read the frame termination mark: " + err.Error(), G.filename, []string{"Next"}, true}
	}
	if s[0] != '*' {
		return Error{"Wrong number of atoms in frame", G.filename, []string{"Next"}, true}
	}
	return nil
}

//Close closes the object, and marks it as unreadable
func (G *GtfR) Close() {
	if !G.readable {
		return
	}
	G.lzw.Close()
	G.readable = false
}

//Len returns the number of atoms in each geometry of the archive.
func (G *GtfR) Len() int {
	return G.natoms
}

//Errors

//Error is the error type for gtf archives. It fullfills geom.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("gtf file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing archive was associated
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	ArchiveUnIniRead  = "Archive object uninitialized to read"
	ArchiveUnIniWrite = "Archive object uninitialized to write"
	NilCoordinates    = "Given nil coordinates"
)

//LastFrameError is returned by Next when the archive ended normally.
type LastFrameError interface {
	NormalLastFrameTermination()
	FileName() string
	Error() string
}

type lastFrameError struct {
	deco     []string
	fileName string
}

//lastFrameError does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
