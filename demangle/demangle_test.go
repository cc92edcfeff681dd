package demangle

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemangle(t *testing.T) {
	tests := []struct {
		name    string
		mangled string
		want    string
	}{
		{
			name:    "top-level name",
			mangled: "_ST3Foo",
			want:    "Foo",
		},
		{
			name:    "top-level generated dispatch",
			mangled: "_ST10__dispatch",
			want:    "__dispatch",
		},
		{
			name:    "digit-leading name uses separator",
			mangled: "_ST4-1two",
			want:    "1two",
		},
		{
			name:    "zero-parameter method",
			mangled: "_SM3AppD3runiEO",
			want:    "App.run(): Int",
		},
		{
			name:    "typed field",
			mangled: "_SM5StatsF5countiO",
			want:    "Stats.count: Int",
		},
		{
			name:    "untyped field",
			mangled: "_SM3FooF3barO",
			want:    "Foo.bar",
		},
		{
			name:    "static method",
			mangled: "_SM17java.lang.IntegerD7compareiiiEo",
			want:    "java.lang.Integer.compare(Int, Int): Int",
		},
		{
			name:    "nested class owner",
			mangled: "_SM42sttp.model.headers.CacheDirective$MinFreshD12productArityiEO",
			want:    "sttp.model.headers.CacheDirective$MinFresh.productArity(): Int",
		},
		{
			name:    "collapsed common types",
			mangled: "_SM33scala.scalanative.unsafe.package$D11fromCStringL28scala.scalanative.unsafe.PtrL24java.nio.charset.CharsetL16java.lang.StringEO",
			want:    "scala.scalanative.unsafe.package$.fromCString(scala.scalanative.unsafe.Ptr, java.nio.charset.Charset): String",
		},
		{
			name:    "private method",
			mangled: "_SM42scala.scalanative.runtime.SymbolFormatter$D10inBounds$1L32scala.scalanative.unsigned.ULongizEPT42scala.scalanative.runtime.SymbolFormatter$",
			want:    "scala.scalanative.runtime.SymbolFormatter$.<private[scala.scalanative.runtime.SymbolFormatter$]>inBounds$1(scala.scalanative.unsigned.ULong, Int): Boolean",
		},
		{
			name:    "lambda-lifted private method",
			mangled: "_SM41scalaboot.template.scalatemplate$package$D10$anonfun$3L26scalaboot.template.ContextL15scala.Function1L23java.lang.StringBuilderL31scalaboot.template.UnsafeCursorL23scalaboot.template.MoveuEPT41scalaboot.template.scalatemplate$package$",
			want:    "scalaboot.template.scalatemplate$package$.<private[scalaboot.template.scalatemplate$package$]>$anonfun$3(scalaboot.template.Context, scala.Function1, java.lang.StringBuilder, scalaboot.template.UnsafeCursor, scalaboot.template.Move): Unit",
		},
		{
			name:    "array parameter",
			mangled: "_SM4App$D4mainLAL16java.lang.String_uEO",
			want:    "App$.main(String[]): Unit",
		},
		{
			name:    "two-dimensional array parameter",
			mangled: "_SM3MatD3getLALAi__iEO",
			want:    "Mat.get(Int[][]): Int",
		},
		{
			name:    "operator method",
			mangled: "_SM3VecD8$plus$eqiuEO",
			want:    "Vec.+=(Int): Unit",
		},
		{
			name:    "constructor",
			mangled: "_SM4ListRiE",
			want:    "List.<init>(Int)",
		},
		{
			name:    "zero-parameter constructor",
			mangled: "_SM4ListRE",
			want:    "List.<init>()",
		},
		{
			name:    "static initializer",
			mangled: "_SM4ListI",
			want:    "List.<clinit>",
		},
		{
			name:    "c extern name",
			mangled: "_SM3LibC6malloc",
			want:    "Lib.malloc",
		},
		{
			name:    "generated name",
			mangled: "_SM3LibG12$extern$init",
			want:    "Lib.$extern$init",
		},
		{
			name:    "proxy method",
			mangled: "_SM3FooP3runiuE",
			want:    "Foo.run(Int): Unit",
		},
		{
			name:    "duplicate signature renders its inner member",
			mangled: "_SM3FooKD3runiEOiE",
			want:    "Foo.run(): Int",
		},
		{
			name:    "c function parameter",
			mangled: "_SM3LibD3cbkRiiEuEO",
			want:    "Lib.cbk((Int) => Int): Unit",
		},
		{
			name:    "c pointer parameter",
			mangled: "_SM3LibD3runR_uEO",
			want:    "Lib.run(Ptr): Unit",
		},
		{
			name:    "c array parameter",
			mangled: "_SM3LibD3bufAi16_uEO",
			want:    "Lib.buf(CArray[Int, 16]): Unit",
		},
		{
			name:    "c struct parameter",
			mangled: "_SM3LibD4packSijEuEO",
			want:    "Lib.pack(CStruct[Int, Long]): Unit",
		},
		{
			name:    "c vararg parameter",
			mangled: "_SM3LibD6printfvuEO",
			want:    "Lib.printf(<c vararg>): Unit",
		},
		{
			name:    "exact class parameter",
			mangled: "_SM3FooD2eqX3BarzEO",
			want:    "Foo.eq(Bar): Boolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Demangle(tt.mangled)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDemangleQualified(t *testing.T) {
	tests := []struct {
		name    string
		mangled string
		want    string
	}{
		{
			name:    "primitives keep the scala prefix",
			mangled: "_SM17java.lang.IntegerD7compareiiiEo",
			want:    "java.lang.Integer.compare(scala.Int, scala.Int): scala.Int",
		},
		{
			name:    "common types keep their packages",
			mangled: "_SM42sttp.model.headers.CacheDirective$MinFreshD12productArityiEO",
			want:    "sttp.model.headers.CacheDirective$MinFresh.productArity(): scala.Int",
		},
		{
			name:    "string stays qualified",
			mangled: "_SM3AppD5greetL16java.lang.StringuEO",
			want:    "App.greet(java.lang.String): scala.Unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DemangleWithOptions(tt.mangled, Options{Qualified: true})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Demangle is referentially transparent: identical input, identical result.
func TestDemangleIsPure(t *testing.T) {
	const mangled = "_SM42sttp.model.headers.CacheDirective$MinFreshD12productArityiEO"

	first, err := Demangle(mangled)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Demangle(mangled)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestDemangleErrors(t *testing.T) {
	tests := []struct {
		name     string
		mangled  string
		sentinel error
		offset   int
	}{
		{name: "empty input", mangled: "", sentinel: ErrUnexpectedEnd, offset: 0},
		{name: "missing prologue", mangled: "main", sentinel: ErrNotMangled, offset: 0},
		{name: "prologue only", mangled: "_S", sentinel: ErrUnexpectedEnd, offset: 2},
		{name: "unknown defn tag", mangled: "_SQ3Foo", sentinel: ErrUnknownTag, offset: 2},
		{name: "unknown sig tag", mangled: "_SM3FooZ3run", sentinel: ErrUnknownTag, offset: 7},
		{name: "length exceeds input", mangled: "_ST3Fo", sentinel: ErrInvalidLength, offset: 3},
		{name: "zero length", mangled: "_ST0", sentinel: ErrInvalidLength, offset: 3},
		{name: "length overflow", mangled: "_ST99999999999999999999x", sentinel: ErrInvalidLength, offset: 3},
		{name: "unknown primitive code", mangled: "_SM3FooD3runqEO", sentinel: ErrUnknownPrimitive, offset: 12},
		{name: "missing array terminator", mangled: "_SM3FooD1fAizEO", sentinel: ErrUnexpectedChar, offset: 12},
		{name: "empty method type list", mangled: "_SM3FooD3runEO", sentinel: ErrUnexpectedChar, offset: 12},
		{name: "unknown scope tag", mangled: "_SM3FooD3runiEQ", sentinel: ErrUnknownTag, offset: 14},
		{name: "truncated type list", mangled: "_SM3FooD3runi", sentinel: ErrUnexpectedEnd, offset: 13},
		{name: "trailing input", mangled: "_ST3FooX", sentinel: ErrTrailingInput, offset: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Demangle(tt.mangled)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.offset, perr.Offset)
			assert.NotEmpty(t, perr.Production)
		})
	}
}

func TestDemangleRecursionLimit(t *testing.T) {
	mangled := "_SM3FooD3run" + strings.Repeat("A", maxDepth+64)

	_, err := Demangle(mangled)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecursionLimit)
}

func TestFilter(t *testing.T) {
	// Mangled names demangle, everything else echoes through.
	assert.Equal(t, "App.run(): Int", Filter("_SM3AppD3runiEO"))
	assert.Equal(t, "main", Filter("main"))
	assert.Equal(t, "_STbroken", Filter("_STbroken"))
	assert.Equal(t, "", Filter(""))
}

func TestIsMangled(t *testing.T) {
	assert.True(t, IsMangled("_ST3Foo"))
	assert.True(t, IsMangled("_S"))
	assert.False(t, IsMangled("main"))
	assert.False(t, IsMangled("_Zmain"))
	assert.False(t, IsMangled(""))
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Demangle("_ST3Fo")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, err.Error(), "offset 3")
	assert.Contains(t, err.Error(), "invalid length prefix")
}
