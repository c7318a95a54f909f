package engine

// Factory pattern map: 25 cells laid out as a 5x5 grid in pattern space.
// Each cell holds 96 bytes = 32 steps x 3 channels (BD, SD, HH) of 0..255
// trigger probabilities. The x axis of the grid trades straight patterns for
// syncopated ones, the y axis goes from sparse to busy.
var factoryNodes = [NumCells][CellBytes]uint8{
	{ // cell 0 (x=0 y=0)
		255,   0,   0,   0,   0,   0,   0,   0, 107,   0,   0,   0,   0,   0,   0,   0,
		200,   0,   0,   0,   0,   0,   0,   0,  82,   0,   0,   0,   0,   0,   0,   0,
		  0,   0,   0,   0,   0,   0,   0,   0, 255,   0,   0,   0,   0,   0,   0,   0,
		  0,   0,   0,   0,   0,   0,   0,   0, 225,   0,   0,   0,   0,   0,   0,   0,
		104,   0,  64,   0, 113,   0,  76,   0, 121,   0,  52,   0, 124,   0,  62,   0,
		125,   0,  77,   0, 100,   0,  48,   0, 106,   0,  85,   0, 123,   0,  58,   0,
	},
	{ // cell 1 (x=1 y=0)
		255,   0,   0,   0,   0,   0,   0,   0,  79,   0,  10,   0,   0,   0,  20,   0,
		200,   0,   0,  17,   0,   0,  13,   0, 109,   0,   0,   0,   0,   0,   0,   0,
		  0,   0,   0,   0,  18,   0,   0,   0, 255,   0,   0,   0,   0,   0,   0,   9,
		  0,   0,   0,   0,  13,   0,   0,   0, 239,   0,   0,   0,   0,   0,   0,  17,
		128,  20,  61,  33, 133,  21,  44,  19, 139,  14,  87,  18, 104,   3,  74,   0,
		121,  12,  91,   0, 132,  15,  82,  26, 127,  13,  55,   0, 123,   1,  39,  25,
	},
	{ // cell 2 (x=2 y=0)
		255,   0,   0,  59,   0,   0,  19,   0,  99,   0,  53,   0,   0,   0,  62,   0,
		200,   0,   0,  22,   0,   0,  56,   0,  83,   0,  39,   0,   0,   0,  44,   0,
		  0,   0,   0,   0,  28,   0,   0,   0, 255,   0,   0,  34,   0,   0,   0,  57,
		  0,   0,   0,   0,  21,   0,   0,   0, 222,   0,   0,  22,   0,   0,   0,  34,
		126,  72,  96,  72, 126,  40,  85,  68, 136,  75,  98,  41, 105,  49,  47,  63,
		113,  70,  98,  58, 130,  42,  80,  44, 113,  74,  92,  55, 133,  38,  80,  59,
	},
	{ // cell 3 (x=3 y=0)
		255,   0,   0, 101,   0,   0, 104,   0,  71,   0,  69,   0,   0,   0,  80,   0,
		200,   0,   0,  76,   0,   0,  55,   0,  82,   0, 100,   0,   0,   0,  63,   0,
		  0,   0,   0,   0,  64,   0,   0,   0, 255,   0,   0,  62,   0,   0,   0,  59,
		  0,   0,   0,   0,  96,   0,   0,   0, 248,   0,   0,  76,   0,   0,   0,  78,
		139,  74, 111,  83, 126,  66,  64,  92, 134,  79,  87,  75, 136,  66,  41,  66,
		138, 114,  78,  74, 116,  99,  61,  85, 104,  86, 110,  98, 112,  70,  37, 110,
	},
	{ // cell 4 (x=4 y=0)
		255,   0,   0, 132,   0,   0, 145,   0, 107,   0, 101,   0,   0,   0,  95,   0,
		200,   0,   0, 114,   0,   0, 128,   0,  92,   0, 144,   0,   0,   0, 131,   0,
		  0,   0,   0,   0,  99,   0,   0,   0, 255,   0,   0,  96,   0,   0,   0, 132,
		  0,   0,   0,   0, 115,   0,   0,   0, 244,   0,   0, 112,   0,   0,   0, 100,
		111, 141, 102, 135, 116, 105,  55, 141, 107, 124, 129, 150, 111, 149,  60, 136,
		132, 138, 131, 142, 140, 133,  74, 134, 124, 139, 101, 152, 133, 146,  42, 138,
	},
	{ // cell 5 (x=0 y=1)
		255,   0,   0,   0,   0,   0,   0,   0, 130,   0,   0,   0,   0,   0,   0,   0,
		210,   0,   0,   0,   0,   0,   0,   0, 101,   0,   0,   0,   0,   0,   0,   0,
		  0,   0,   0,   0,   0,   0,   0,   0, 255,   0,   0,   0,   0,   0,   0,   0,
		  0,   0,   0,   0,   0,   0,   0,   0, 235,   0,   0,   0,   0,   0,   0,   0,
		153,   0,  85,   0, 150,  12, 100,   0, 156,  15, 127,   0, 173,   9, 115,   0,
		183,   0, 111,   0, 172,   0,  89,   0, 176,   0,  89,   0, 157,   0, 116,   0,
	},
	{ // cell 6 (x=1 y=1)
		255,   0,   3,  12,   0,   0,  24,   0, 115,   0,  21,   0,   0,   0,  17,   0,
		210,   0,   0,   2,   0,   0,   5,   0, 139,   0,  23,   0,   0,   0,   0,   0,
		  0,   0,   0,   0,  23,   0,   0,   0, 255,   0,   0,   0,   0,   7,   0,  30,
		  0,   0,   0,   0,  27,   0,   0,   0, 229,   0,   0,   2,   0,   4,   0,   5,
		153,  18, 115,  10, 149,  13,  84,  34, 157,  12, 121,  20, 150,  18,  97,  30,
		172,  18,  96,  42, 164,  28,  98,  22, 147,  28, 138,  49, 164,  13,  94,  17,
	},
	{ // cell 7 (x=2 y=1)
		255,   0,   0,  57,   0,   0,  39,   0, 108,   0,  61,   0,   0,   0,  32,   0,
		210,   0,   0,  39,   0,   0,  27,   0, 105,   0,  20,   0,   0,   0,  34,   0,
		  0,   0,   0,   0,  27,   0,   4,   0, 255,   0,   0,  32,   0,   0,   0,  25,
		  0,   0,   0,   0,  55,   0,   0,  10, 226,   0,   0,  47,   0,   9,   0,  26,
		148,  88, 150,  77, 173,  43, 102,  87, 166,  82, 119,  53, 177,  89, 111,  54,
		146,  45, 134,  90, 181,  48, 105,  52, 166,  56, 148,  69, 185,  41, 102,  91,
	},
	{ // cell 8 (x=3 y=1)
		255,   0,   3,  84,   0,   0,  83,   0, 117,   0,  90,   0,   0,   0,  58,   0,
		210,   0,   2,  61,   0,   0,  69,   0, 114,   0,  87,   0,   0,   0,  86,   0,
		  0,   0,   0,   0,  70,   0,   0,   0, 255,   0,   0,  83,   0,   5,   0,  87,
		  0,   0,   0,   0,  72,   0,   3,   0, 245,   0,   0,  82,   0,   0,   0,  97,
		178,  90, 156, 128, 145, 125, 101, 118, 157,  87, 154, 125, 156, 104, 122, 121,
		173,  88, 143, 102, 154,  90,  82, 123, 146, 104, 140, 119, 175,  86,  97, 123,
	},
	{ // cell 9 (x=4 y=1)
		255,   0,   0, 110,   0,   0, 121,   0, 124,   0, 125,   0,   0,   0, 140,   0,
		210,   0,   0, 112,   0,   0, 135,   0, 138,   0, 129,   0,   0,   0, 139,   0,
		  0,   0,   0,   0,  97,   0,   0,   3, 255,   0,   0, 122,   0,   0,   0,  95,
		  0,   0,   0,   0,  99,   0,   7,   0, 221,   0,   0, 118,   0,   0,   0, 130,
		163, 140, 151, 149, 151, 143, 115, 166, 174, 134, 171, 125, 157, 133, 106, 147,
		159, 128, 156, 131, 150, 148, 101, 138, 160, 127, 147, 125, 157, 167,  97, 128,
	},
	{ // cell 10 (x=0 y=2)
		255,   0,  13,   0,   4,   0,   8,   0, 143,   0,   0,   0,   0,   0,  12,   0,
		220,   0,   5,   0,   4,   0,  17,   0, 150,   0,   3,   0,  13,   0,   0,   0,
		  0,   0,   0,   0,   0,   0,  10,  31, 255,   0,   0,   0,   0,  23,   0,   0,
		  0,   0,   0,   0,   0,   0,  21,   0, 232,   0,   0,   0,   0,  22,   0,   0,
		222,   0, 143,   0, 211,   9, 138,   1, 205,  12, 126,  24, 191,   6, 165,  12,
		209,  27, 156,  10, 221,  14, 131,  24, 229,   0, 174,   0, 200,  11, 166,  28,
	},
	{ // cell 11 (x=1 y=2)
		255,   0,   2,  14,   0,   0,   7,   0, 160,   0,  19,   0,   5,   0,   4,   0,
		220,   0,   0,   1,   3,   0,  23,   0, 167,   0,  17,   0,  10,   0,  21,   0,
		  0,   0,   0,   0,  14,   0,  33,   5, 255,   0,   0,  14,   0,  23,   0,   1,
		  0,   0,   0,   0,   7,   0,  28,  17, 227,   0,   0,   0,   0,  21,   0,   0,
		229,  43, 153,  19, 194,  22, 168,  32, 209,  43, 178,  68, 195,  55, 125,  22,
		205,  34, 179,  53, 220,  18, 141,  59, 217,  51, 147,  36, 225,  45, 134,  51,
	},
	{ // cell 12 (x=2 y=2)
		255,   0,   0,  16,   0,   0,  45,   0, 131,   0,  50,   0,  10,   0,  37,   0,
		220,   0,   0,  30,   6,   0,  42,   0, 147,   0,  16,   0,  21,   0,  19,   0,
		  0,   0,   0,   0,  39,   0,  19,  14, 255,   0,   0,  47,   0,   0,   0,  41,
		  0,   0,   0,   0,  45,   0,  28,  17, 229,   0,   0,  32,   0,   6,   0,  49,
		229, 104, 163,  94, 207,  97, 156,  99, 219,  66, 166,  82, 207,  99, 137,  68,
		191,  58, 177,  67, 192, 101, 161, 103, 209,  89, 188,  64, 199,  57, 135, 104,
	},
	{ // cell 13 (x=3 y=2)
		255,   0,   7,  61,   7,   0,  76,   0, 145,   0,  97,   0,  12,   0,  70,   0,
		220,   0,   7,  95,   0,   0,  94,   0, 166,   0,  58,   0,   9,   0,  64,   0,
		  0,   0,   0,   0,  89,   0,  24,  20, 255,   0,   0,  78,   0,   2,   0,  76,
		  0,   0,   0,   0, 100,   0,  33,  28, 222,   0,   0,  61,   0,  14,   0,  60,
		213, 127, 208, 137, 217, 133, 154, 108, 220, 134, 175, 115, 226, 113, 168, 100,
		195, 102, 197, 136, 206, 116, 135, 142, 223, 144, 173, 124, 211,  99, 158, 102,
	},
	{ // cell 14 (x=4 y=2)
		255,   0,  12, 144,  20,   0, 102,   0, 148,   0, 129,   0,  11,   0, 102,   0,
		220,   0,   0, 116,  12,   0, 143,   0, 142,   0, 130,   0,   1,   0, 113,   0,
		  0,   0,   0,   0,  93,   0,  13,   6, 255,   0,   0, 125,   0,  26,   0, 125,
		  0,   0,   0,   0,  99,   0,  32,  10, 235,   0,   0,  99,   0,   5,   0,  92,
		201, 141, 206, 145, 199, 182, 165, 176, 217, 132, 218, 144, 223, 153, 163, 147,
		207, 170, 187, 148, 216, 155, 160, 144, 220, 175, 217, 153, 201, 180, 163, 171,
	},
	{ // cell 15 (x=0 y=3)
		255,   0,  24,   0,  39,   0,  24,   0, 198,   0,  39,   0,  16,   0,  17,   0,
		230,   0,  22,   0,  37,   0,  27,   0, 194,   0,  22,   0,  36,   0,  38,   0,
		  0,   0,   0,   0,   0,   0,  51,  23, 255,   0,   0,   0,   0,  55,   0,   0,
		  0,   0,   0,   0,   0,   0,  53,  26, 238,   0,   0,   0,   0,  45,   0,   0,
		255,   5, 213,  29, 255,   4, 201,  30, 240,  27, 199,  34, 248,  31, 195,  29,
		251,  40, 193,  20, 237,  22, 210,   0, 255,  38, 218,  38, 249,  16, 217,  31,
	},
	{ // cell 16 (x=1 y=3)
		255,   0,  31,   0,  25,   0,  39,   0, 175,   0,  27,   0,  19,   0,  20,   0,
		230,   0,  23,  10,  34,   0,   1,   0, 171,   0,  19,   0,  29,   0,  10,   0,
		  0,   0,   0,   0,   8,   0,  47,  46, 255,   0,   0,  12,   0,  20,   0,   0,
		  0,   0,   0,   0,   0,   0,  30,  47, 224,   0,   0,  12,   0,  60,   0,   9,
		246,  70, 229,  73, 244,  63, 216,  68, 255,  57, 196,  44, 255,  40, 207,  38,
		255,  72, 183,  35, 248,  54, 193,  59, 251,  53, 201,  57, 255,  54, 185,  77,
	},
	{ // cell 17 (x=2 y=3)
		255,   0,  19,  34,  37,   0,  21,   0, 200,   0,  59,   0,   9,   0,  38,   0,
		230,   0,  28,  33,  24,   0,  64,   0, 171,   0,  16,   0,  25,   0,  34,   0,
		  0,   0,   0,   0,  58,   0,  52,  20, 255,   0,   0,  41,   0,  33,   0,  56,
		  0,   0,   0,   0,  53,   0,  56,  28, 250,   0,   0,  29,   0,  44,   0,  57,
		253, 119, 244,  75, 255,  74, 205, 112, 255,  92, 242, 108, 255,  98, 175,  99,
		247,  87, 236, 112, 235, 120, 200,  76, 255,  71, 198,  80, 250,  94, 195, 121,
	},
	{ // cell 18 (x=3 y=3)
		255,   0,  12, 102,  11,   0, 105,   0, 178,   0,  89,   0,  37,   0,  97,   0,
		230,   0,  22, 103,  29,   0,  90,   0, 171,   0, 103,   0,  39,   0,  82,   0,
		  0,   0,   0,   0,  66,   0,  21,  45, 255,   0,   0,  71,   0,  36,   0,  72,
		  0,   0,   0,   0,  68,   0,  47,  23, 227,   0,   0,  85,   0,  41,   0,  92,
		248, 117, 235, 109, 255, 142, 216, 140, 255, 115, 208, 124, 248, 139, 194, 139,
		255, 147, 244, 144, 246, 158, 174, 109, 245, 155, 213, 120, 255, 119, 190, 157,
	},
	{ // cell 19 (x=4 y=3)
		255,   0,  34, 107,  15,   0, 135,   0, 192,   0, 141,   0,  16,   0, 132,   0,
		230,   0,  36, 137,  17,   0, 124,   0, 175,   0, 100,   0,  32,   0, 115,   0,
		  0,   0,   0,   0, 113,   0,  39,  28, 255,   0,   0, 100,   0,  38,   0,  96,
		  0,   0,   0,   0, 135,   0,  38,  38, 230,   0,   0, 133,   0,  33,   0, 110,
		247, 179, 250, 194, 242, 174, 183, 159, 236, 153, 218, 175, 255, 172, 214, 185,
		255, 171, 252, 192, 255, 152, 170, 148, 255, 169, 255, 165, 255, 160, 178, 171,
	},
	{ // cell 20 (x=0 y=4)
		255,   0,  36,   0,  32,   0,  54,   0, 195,   0,  47,   0,  40,   0,  28,   0,
		240,   0,  48,   0,  50,   0,  57,   0, 203,   0,  54,   0,  52,   0,  54,   0,
		  0,   0,   0,   0,   0,   0,  73,  82, 255,   0,   0,   0,   0,  59,   0,   0,
		  0,   0,   0,   0,   0,   0,  54,  67, 239,   0,   0,   0,   0,  56,   0,   0,
		255,  60, 222,  30, 255,  51, 242,  43, 255,  21, 255,  30, 255,  36, 216,  19,
		255,  39, 238,  33, 255,  49, 215,  45, 255,  10, 255,  26, 255,  46, 218,  44,
	},
	{ // cell 21 (x=1 y=4)
		255,   0,  53,  13,  48,   0,  50,   0, 222,   0,  45,   0,  32,   0,  21,   0,
		240,   0,  30,   0,  36,   0,  23,   0, 203,   0,  41,   0,  49,   0,   4,   0,
		  0,   0,   0,   0,  20,   0,  62,  75, 255,   0,   0,  10,   0,  49,   0,   9,
		  0,   0,   0,   0,  25,   0,  69,  52, 227,   0,   0,   0,   0,  78,   0,   6,
		255,  76, 255,  53, 255,  86, 246,  66, 255,  87, 229,  82, 255,  73, 242,  57,
		255,  72, 231,  77, 255,  86, 216,  48, 255,  78, 253,  98, 255,  71, 246,  87,
	},
	{ // cell 22 (x=2 y=4)
		255,   0,  44,  20,  37,   0,  64,   0, 193,   0,  41,   0,  37,   0,  32,   0,
		240,   0,  54,  21,  28,   0,  17,   0, 207,   0,  39,   0,  32,   0,  49,   0,
		  0,   0,   0,   0,  41,   0,  45,  72, 255,   0,   0,  55,   0,  50,   0,  41,
		  0,   0,   0,   0,  64,   0,  83,  69, 224,   0,   0,  35,   0,  49,   0,  30,
		255, 106, 255, 114, 255,  88, 220, 128, 255,  94, 255,  87, 255, 113, 251, 116,
		255, 116, 241, 135, 255, 107, 248, 116, 255, 124, 255, 119, 255, 106, 215, 111,
	},
	{ // cell 23 (x=3 y=4)
		255,   0,  37,  55,  32,   0,  66,   0, 207,   0,  58,   0,  39,   0,  81,   0,
		240,   0,  57,  72,  36,   0, 105,   0, 225,   0,  78,   0,  53,   0,  57,   0,
		  0,   0,   0,   0,  56,   0,  59,  58, 255,   0,   0,  89,   0,  51,   0,  85,
		  0,   0,   0,   0,  94,   0,  70,  65, 233,   0,   0,  82,   0,  58,   0,  56,
		255, 148, 255, 173, 255, 158, 233, 172, 255, 134, 255, 153, 255, 162, 255, 169,
		255, 148, 255, 158, 255, 173, 222, 162, 255, 129, 255, 171, 255, 148, 255, 139,
	},
	{ // cell 24 (x=4 y=4)
		255,   0,  36, 133,  46,   0, 114,   0, 205,   0, 131,   0,  47,   0, 142,   0,
		240,   0,  27, 106,  29,   0, 117,   0, 204,   0, 104,   0,  49,   0, 133,   0,
		  0,   0,   0,   0,  99,   0,  51,  61, 255,   0,   0, 120,   0,  63,   0, 122,
		  0,   0,   0,   0, 132,   0,  55,  76, 240,   0,   0, 116,   0,  56,   0, 130,
		255, 171, 255, 179, 255, 202, 249, 189, 255, 199, 255, 207, 255, 172, 219, 165,
		255, 212, 255, 212, 255, 186, 244, 202, 255, 164, 255, 174, 255, 169, 255, 185,
	},
}
