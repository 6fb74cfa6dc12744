// Copyright 2017 Hajime Hoshi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package huffman

// The Layer III Huffman code books, transcribed from ISO/IEC 11172-3
// Annex B table B.7. A pairData stores one big_values code book as two
// parallel arrays indexed x*dim + y: the codeword value and its bit
// length. Code books 16 and 24 are shared by table numbers 16..23 and
// 24..31 respectively, whose members differ only in their linbits
// escape width; table numbers 0, 4 and 14 carry no code book at all.
type pairData struct {
	dim   int
	codes []uint32
	lens  []uint8
}

var pair1 = pairData{dim: 2, codes: []uint32{
	1, 1,
	1, 0,
}, lens: []uint8{
	1, 3,
	2, 3,
}}

var pair2 = pairData{dim: 3, codes: []uint32{
	1, 2, 1,
	3, 1, 1,
	3, 2, 0,
}, lens: []uint8{
	1, 3, 6,
	3, 3, 5,
	5, 5, 6,
}}

var pair3 = pairData{dim: 3, codes: []uint32{
	3, 2, 1,
	1, 1, 1,
	3, 2, 0,
}, lens: []uint8{
	2, 2, 6,
	3, 2, 5,
	5, 5, 6,
}}

var pair5 = pairData{dim: 4, codes: []uint32{
	1, 2, 6, 5,
	3, 1, 4, 4,
	7, 5, 7, 1,
	6, 1, 1, 0,
}, lens: []uint8{
	1, 3, 6, 7,
	3, 3, 6, 7,
	6, 6, 7, 8,
	7, 6, 7, 8,
}}

var pair6 = pairData{dim: 4, codes: []uint32{
	7, 3, 5, 1,
	6, 2, 3, 2,
	5, 4, 4, 1,
	3, 3, 2, 0,
}, lens: []uint8{
	3, 3, 5, 7,
	3, 2, 4, 5,
	4, 4, 5, 6,
	6, 5, 6, 7,
}}

var pair7 = pairData{dim: 6, codes: []uint32{
	1, 2, 10, 19, 16, 10,
	3, 3, 7, 10, 5, 3,
	11, 4, 13, 17, 8, 4,
	12, 11, 18, 15, 11, 2,
	7, 6, 9, 14, 3, 1,
	6, 4, 5, 3, 2, 0,
}, lens: []uint8{
	1, 3, 6, 8, 8, 9,
	3, 4, 6, 7, 7, 8,
	6, 5, 7, 8, 8, 9,
	7, 7, 8, 9, 9, 9,
	7, 7, 8, 9, 9, 10,
	8, 8, 9, 10, 10, 10,
}}

var pair8 = pairData{dim: 6, codes: []uint32{
	3, 4, 6, 18, 12, 5,
	5, 1, 2, 16, 9, 3,
	7, 3, 5, 14, 7, 3,
	19, 17, 15, 13, 10, 4,
	13, 5, 8, 11, 5, 1,
	12, 4, 4, 1, 1, 0,
}, lens: []uint8{
	2, 3, 6, 8, 8, 9,
	3, 2, 4, 8, 8, 8,
	6, 4, 6, 8, 8, 9,
	8, 8, 8, 9, 9, 10,
	8, 7, 8, 9, 10, 10,
	9, 8, 9, 9, 11, 11,
}}

var pair9 = pairData{dim: 6, codes: []uint32{
	7, 5, 9, 14, 15, 7,
	6, 4, 5, 5, 6, 7,
	7, 6, 8, 8, 8, 5,
	15, 6, 9, 10, 5, 1,
	11, 7, 9, 6, 4, 1,
	14, 4, 6, 2, 6, 0,
}, lens: []uint8{
	3, 3, 5, 6, 8, 9,
	3, 3, 4, 5, 6, 8,
	4, 4, 5, 6, 7, 8,
	6, 5, 6, 7, 7, 8,
	7, 6, 7, 7, 8, 9,
	8, 7, 8, 8, 9, 9,
}}

var pair10 = pairData{dim: 8, codes: []uint32{
	1, 2, 10, 23, 35, 30, 12, 17,
	3, 3, 8, 12, 18, 21, 12, 7,
	11, 9, 15, 21, 32, 40, 19, 6,
	14, 13, 22, 34, 46, 23, 18, 7,
	20, 19, 33, 47, 27, 22, 9, 3,
	31, 22, 41, 26, 21, 20, 5, 3,
	14, 13, 10, 11, 16, 6, 5, 1,
	9, 8, 7, 8, 4, 4, 2, 0,
}, lens: []uint8{
	1, 3, 6, 8, 9, 9, 9, 10,
	3, 4, 6, 7, 8, 9, 8, 8,
	6, 6, 7, 8, 9, 10, 9, 9,
	7, 7, 8, 9, 10, 10, 9, 10,
	8, 8, 9, 10, 10, 10, 10, 10,
	9, 9, 10, 10, 11, 11, 10, 11,
	8, 8, 9, 10, 10, 10, 11, 11,
	9, 8, 9, 10, 10, 11, 11, 11,
}}

var pair11 = pairData{dim: 8, codes: []uint32{
	3, 4, 10, 24, 34, 33, 21, 15,
	5, 3, 4, 10, 32, 17, 11, 10,
	11, 7, 13, 18, 30, 31, 20, 5,
	25, 11, 19, 59, 27, 18, 12, 5,
	35, 33, 31, 58, 30, 16, 7, 5,
	28, 26, 32, 19, 17, 15, 8, 14,
	14, 12, 9, 13, 14, 9, 4, 1,
	11, 4, 6, 6, 6, 3, 2, 0,
}, lens: []uint8{
	2, 3, 5, 7, 8, 9, 8, 9,
	3, 3, 4, 6, 8, 8, 7, 8,
	5, 5, 6, 7, 8, 9, 8, 8,
	7, 6, 7, 9, 8, 10, 8, 9,
	8, 8, 8, 9, 9, 10, 9, 10,
	8, 8, 9, 10, 10, 11, 10, 11,
	8, 7, 7, 8, 9, 10, 10, 10,
	8, 7, 8, 9, 10, 10, 10, 10,
}}

var pair12 = pairData{dim: 8, codes: []uint32{
	9, 6, 16, 33, 41, 39, 38, 26,
	7, 5, 6, 9, 23, 16, 26, 11,
	17, 7, 11, 14, 21, 30, 10, 7,
	17, 10, 15, 12, 18, 28, 14, 5,
	32, 13, 22, 19, 18, 16, 9, 5,
	40, 17, 31, 29, 17, 13, 4, 2,
	27, 12, 11, 15, 10, 7, 4, 1,
	27, 12, 8, 12, 6, 3, 1, 0,
}, lens: []uint8{
	4, 3, 5, 7, 8, 9, 9, 9,
	3, 3, 4, 5, 7, 7, 8, 8,
	5, 4, 5, 6, 7, 8, 7, 8,
	6, 5, 6, 6, 7, 8, 8, 8,
	7, 6, 7, 7, 8, 8, 8, 9,
	8, 7, 8, 8, 8, 9, 8, 9,
	8, 7, 7, 8, 8, 9, 9, 9,
	9, 8, 8, 9, 9, 9, 10, 10,
}}

var pair13 = pairData{dim: 16, codes: []uint32{
	1, 5, 14, 21, 34, 51, 46, 71, 42, 52, 68, 52, 67, 44, 43, 19,
	3, 4, 12, 19, 31, 26, 44, 33, 31, 24, 32, 24, 31, 35, 22, 14,
	15, 13, 23, 36, 59, 49, 77, 65, 29, 40, 30, 40, 27, 33, 42, 16,
	22, 20, 37, 61, 56, 79, 73, 64, 43, 76, 56, 37, 26, 31, 25, 14,
	35, 16, 60, 57, 97, 75, 114, 91, 54, 73, 55, 41, 48, 53, 23, 24,
	58, 27, 50, 96, 76, 70, 93, 84, 77, 58, 79, 29, 74, 49, 41, 17,
	47, 45, 78, 74, 115, 94, 90, 79, 69, 83, 71, 50, 59, 38, 36, 15,
	72, 34, 56, 95, 92, 85, 91, 90, 86, 73, 77, 65, 51, 44, 43, 42,
	43, 20, 30, 44, 55, 78, 72, 87, 78, 61, 46, 54, 37, 30, 20, 16,
	53, 25, 41, 37, 44, 59, 54, 81, 66, 76, 57, 54, 37, 18, 39, 11,
	35, 33, 31, 57, 42, 82, 72, 80, 47, 58, 55, 21, 22, 26, 38, 22,
	53, 25, 23, 38, 70, 60, 51, 36, 55, 26, 34, 23, 27, 14, 9, 7,
	34, 32, 28, 39, 49, 75, 30, 52, 48, 40, 52, 28, 18, 17, 9, 5,
	45, 21, 34, 64, 56, 50, 49, 45, 31, 19, 12, 15, 10, 7, 6, 3,
	48, 23, 20, 39, 36, 35, 53, 21, 16, 23, 13, 10, 6, 1, 4, 2,
	16, 15, 17, 27, 25, 20, 29, 11, 17, 12, 16, 8, 1, 1, 0, 1,
}, lens: []uint8{
	1, 4, 6, 7, 8, 9, 9, 10, 9, 10, 11, 11, 12, 12, 13, 13,
	3, 4, 6, 7, 8, 8, 9, 9, 9, 9, 10, 10, 11, 12, 12, 12,
	6, 6, 7, 8, 9, 9, 10, 10, 9, 10, 10, 11, 11, 12, 13, 13,
	7, 7, 8, 9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 12, 13, 13,
	8, 7, 9, 9, 10, 10, 11, 11, 10, 11, 11, 12, 12, 13, 13, 14,
	9, 8, 9, 10, 10, 10, 11, 11, 11, 11, 12, 11, 13, 13, 14, 14,
	9, 9, 10, 10, 11, 11, 11, 11, 11, 12, 12, 12, 13, 13, 14, 14,
	10, 9, 10, 11, 11, 11, 12, 12, 12, 12, 13, 13, 13, 14, 16, 16,
	9, 8, 9, 10, 10, 11, 11, 12, 12, 12, 12, 13, 13, 14, 15, 15,
	10, 9, 10, 10, 11, 11, 11, 13, 12, 13, 13, 14, 14, 14, 16, 15,
	10, 10, 10, 11, 11, 12, 12, 13, 12, 13, 14, 13, 14, 15, 16, 17,
	11, 10, 10, 11, 12, 12, 12, 12, 13, 13, 13, 14, 15, 15, 15, 16,
	11, 11, 11, 12, 12, 13, 12, 13, 14, 14, 15, 15, 15, 16, 16, 16,
	12, 11, 12, 13, 13, 13, 14, 14, 14, 14, 14, 15, 16, 15, 16, 16,
	13, 12, 12, 13, 13, 13, 15, 14, 14, 17, 15, 15, 15, 17, 16, 16,
	12, 12, 13, 14, 14, 14, 15, 14, 15, 15, 16, 16, 19, 18, 19, 16,
}}

var pair15 = pairData{dim: 16, codes: []uint32{
	7, 12, 18, 53, 47, 76, 124, 121, 133, 141, 150, 1, 30, 81, 122, 63,
	13, 5, 16, 27, 46, 36, 61, 51, 42, 151, 18, 83, 50, 41, 59, 98,
	19, 17, 15, 24, 41, 34, 59, 48, 154, 19, 31, 51, 62, 80, 56, 33,
	29, 28, 25, 43, 39, 63, 142, 93, 21, 59, 64, 72, 54, 75, 106, 127,
	52, 22, 42, 40, 67, 57, 95, 79, 72, 57, 76, 36, 99, 107, 128, 20,
	112, 113, 125, 65, 58, 155, 26, 38, 65, 77, 92, 81, 112, 129, 139, 160,
	120, 64, 50, 54, 90, 27, 39, 66, 78, 57, 100, 113, 130, 140, 161, 167,
	132, 52, 143, 62, 58, 91, 78, 79, 93, 101, 59, 131, 27, 46, 30, 172,
	140, 148, 0, 37, 44, 67, 80, 43, 70, 55, 42, 25, 162, 168, 11, 175,
	149, 68, 30, 55, 71, 46, 74, 102, 49, 132, 24, 16, 22, 13, 176, 185,
	91, 44, 48, 38, 34, 63, 52, 45, 133, 141, 163, 169, 14, 8, 9, 197,
	123, 60, 58, 53, 47, 43, 32, 22, 142, 164, 17, 12, 177, 188, 198, 215,
	71, 37, 34, 94, 28, 20, 17, 26, 21, 16, 10, 178, 8, 199, 216, 220,
	73, 82, 95, 103, 31, 134, 143, 14, 170, 12, 9, 5, 212, 217, 221, 23,
	90, 96, 104, 9, 135, 146, 165, 3, 173, 179, 189, 213, 218, 222, 47, 70,
	97, 105, 126, 138, 147, 166, 171, 174, 184, 196, 214, 219, 223, 58, 30, 62,
}, lens: []uint8{
	3, 4, 5, 7, 7, 8, 9, 9, 9, 9, 9, 10, 10, 11, 11, 13,
	4, 3, 5, 6, 7, 7, 8, 8, 9, 9, 10, 10, 10, 10, 11, 10,
	5, 5, 5, 6, 7, 7, 8, 8, 9, 10, 10, 10, 10, 11, 10, 10,
	6, 6, 6, 7, 7, 8, 9, 9, 10, 9, 10, 10, 10, 10, 10, 10,
	7, 6, 7, 7, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 10, 11,
	9, 9, 9, 8, 8, 9, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	9, 8, 8, 9, 9, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	9, 8, 9, 9, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 10,
	9, 9, 10, 8, 10, 10, 10, 9, 10, 10, 10, 10, 10, 10, 11, 10,
	9, 9, 8, 9, 10, 10, 10, 10, 10, 10, 10, 10, 11, 11, 10, 10,
	10, 9, 10, 8, 9, 10, 10, 10, 10, 10, 10, 10, 11, 11, 12, 10,
	11, 10, 10, 10, 10, 10, 10, 10, 10, 10, 11, 11, 10, 10, 10, 10,
	11, 10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 10, 12, 10, 10, 10,
	10, 10, 10, 10, 11, 10, 10, 10, 10, 10, 11, 11, 10, 10, 10, 11,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 11, 11,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 11, 12, 13,
}}

var pair16 = pairData{dim: 16, codes: []uint32{
	1, 5, 14, 44, 74, 63, 110, 93, 172, 149, 138, 242, 225, 228, 233, 17,
	3, 4, 12, 20, 35, 62, 53, 47, 83, 75, 68, 226, 229, 234, 243, 202,
	15, 13, 23, 38, 67, 58, 103, 90, 161, 72, 127, 230, 235, 244, 253, 209,
	45, 21, 39, 69, 64, 114, 99, 87, 158, 140, 252, 236, 245, 254, 266, 214,
	75, 36, 68, 65, 115, 101, 179, 164, 155, 264, 246, 246, 255, 267, 278, 9,
	66, 30, 59, 56, 102, 185, 173, 265, 142, 253, 247, 256, 268, 279, 289, 16,
	111, 54, 52, 100, 184, 178, 160, 133, 257, 244, 257, 269, 280, 290, 299, 215,
	98, 48, 91, 88, 165, 157, 148, 237, 248, 258, 270, 281, 291, 300, 308, 216,
	85, 84, 81, 159, 156, 143, 238, 249, 259, 271, 282, 292, 301, 309, 316, 217,
	154, 76, 73, 141, 131, 256, 245, 260, 272, 283, 293, 302, 310, 317, 483, 218,
	139, 129, 67, 125, 247, 248, 261, 273, 284, 294, 303, 311, 318, 384, 389, 219,
	224, 130, 243, 239, 249, 262, 274, 285, 295, 304, 312, 319, 385, 390, 394, 220,
	227, 231, 240, 250, 263, 275, 286, 296, 305, 313, 480, 386, 391, 395, 398, 221,
	232, 241, 251, 264, 276, 287, 297, 306, 314, 481, 387, 392, 396, 399, 401, 222,
	242, 252, 265, 277, 288, 298, 307, 315, 482, 388, 393, 397, 400, 402, 403, 223,
	208, 14, 203, 204, 11, 10, 205, 206, 207, 6, 5, 210, 211, 212, 213, 0,
}, lens: []uint8{
	1, 4, 6, 8, 9, 9, 10, 10, 11, 11, 11, 12, 13, 13, 13, 10,
	3, 4, 6, 7, 8, 9, 9, 9, 10, 10, 10, 13, 13, 13, 13, 13,
	6, 6, 7, 8, 9, 9, 10, 10, 11, 10, 11, 13, 13, 13, 13, 13,
	8, 7, 8, 9, 9, 10, 10, 10, 11, 11, 12, 13, 13, 13, 13, 13,
	9, 8, 9, 9, 10, 10, 11, 11, 11, 12, 12, 13, 13, 13, 13, 9,
	9, 8, 9, 9, 10, 11, 11, 12, 11, 12, 13, 13, 13, 13, 13, 10,
	10, 9, 9, 10, 11, 11, 11, 11, 12, 12, 13, 13, 13, 13, 13, 13,
	10, 9, 10, 10, 11, 11, 11, 13, 12, 13, 13, 13, 13, 13, 13, 13,
	10, 10, 10, 11, 11, 11, 13, 12, 13, 13, 13, 13, 13, 13, 13, 13,
	11, 10, 10, 11, 11, 12, 12, 13, 13, 13, 13, 13, 13, 13, 13, 13,
	11, 11, 10, 11, 12, 13, 13, 13, 13, 13, 13, 13, 13, 14, 14, 13,
	13, 11, 12, 13, 13, 13, 13, 13, 13, 13, 13, 13, 14, 14, 14, 13,
	13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 14, 14, 14, 14, 13,
	13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 14, 14, 14, 14, 14, 13,
	13, 13, 13, 13, 13, 13, 13, 13, 13, 14, 14, 14, 14, 14, 14, 13,
	13, 8, 13, 13, 8, 8, 13, 13, 13, 7, 8, 13, 13, 13, 13, 6,
}}

var pair24 = pairData{dim: 16, codes: []uint32{
	15, 13, 46, 80, 146, 262, 248, 146, 150, 166, 171, 183, 621, 208, 217, 88,
	14, 12, 21, 38, 71, 130, 122, 151, 168, 198, 184, 196, 319, 297, 279, 42,
	47, 22, 41, 74, 68, 128, 120, 221, 207, 194, 182, 340, 218, 230, 0, 18,
	81, 39, 75, 70, 134, 125, 116, 220, 204, 190, 209, 219, 311, 1, 271, 16,
	147, 72, 69, 135, 127, 118, 176, 206, 192, 180, 223, 308, 288, 544, 13, 14,
	263, 66, 129, 126, 119, 177, 211, 197, 185, 224, 316, 296, 7, 14, 1049, 157,
	249, 123, 121, 117, 222, 212, 200, 186, 331, 231, 290, 538, 546, 165, 1040, 161,
	147, 152, 210, 201, 213, 202, 187, 225, 264, 2, 8, 539, 166, 181, 1038, 162,
	153, 169, 178, 195, 193, 214, 226, 265, 3, 9, 545, 167, 1030, 1024, 1028, 163,
	670, 199, 188, 191, 181, 334, 317, 4, 10, 15, 172, 1026, 186, 190, 270, 9,
	179, 330, 328, 215, 227, 318, 313, 11, 160, 173, 182, 187, 191, 275, 283, 8,
	189, 203, 216, 312, 309, 5, 291, 161, 174, 183, 188, 258, 276, 284, 341, 7,
	205, 320, 228, 266, 289, 285, 162, 175, 1031, 189, 261, 277, 299, 521, 547, 6,
	518, 298, 267, 6, 12, 163, 537, 184, 1025, 263, 281, 321, 525, 620, 1027, 5,
	229, 280, 278, 274, 164, 180, 185, 1039, 1029, 282, 329, 536, 671, 1041, 1048, 4,
	89, 43, 19, 17, 15, 143, 13, 12, 11, 10, 9, 8, 7, 6, 5, 3,
}, lens: []uint8{
	4, 4, 6, 7, 8, 9, 9, 9, 9, 9, 9, 9, 11, 9, 9, 9,
	4, 4, 5, 6, 7, 8, 8, 9, 9, 9, 9, 9, 10, 10, 10, 8,
	6, 5, 6, 7, 7, 8, 8, 9, 9, 9, 9, 10, 9, 9, 10, 7,
	7, 6, 7, 7, 8, 8, 8, 9, 9, 9, 9, 9, 10, 10, 10, 7,
	8, 7, 7, 8, 8, 8, 9, 9, 9, 9, 9, 10, 10, 11, 10, 7,
	9, 8, 8, 8, 8, 9, 9, 9, 9, 9, 10, 10, 10, 10, 12, 9,
	9, 8, 8, 8, 9, 9, 9, 9, 10, 9, 10, 11, 11, 10, 12, 9,
	9, 9, 9, 9, 9, 9, 9, 9, 9, 10, 10, 11, 10, 10, 12, 9,
	9, 9, 9, 9, 9, 9, 9, 9, 10, 10, 11, 10, 12, 12, 12, 9,
	11, 9, 9, 9, 9, 10, 10, 10, 10, 10, 10, 12, 10, 10, 10, 8,
	9, 10, 10, 9, 9, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 8,
	9, 9, 9, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 8,
	9, 10, 9, 9, 10, 10, 10, 10, 12, 10, 10, 10, 10, 11, 11, 8,
	11, 10, 9, 10, 10, 10, 11, 10, 12, 10, 10, 10, 11, 11, 12, 8,
	9, 10, 10, 10, 10, 10, 10, 12, 12, 10, 10, 11, 11, 12, 12, 8,
	9, 7, 7, 7, 7, 9, 7, 7, 7, 7, 7, 7, 7, 7, 7, 4,
}}

// quadACodes/quadALens are the count1 table A codewords, keyed by the
// (v,w,x,y) nibble. Table B codes every nibble n as the 4-bit value
// 15-n and is generated in place by init rather than stored.
var quadACodes = [16]uint32{1, 5, 4, 5, 6, 5, 4, 4, 7, 3, 6, 0, 7, 2, 3, 1}

var quadALens = [16]uint8{1, 4, 4, 5, 4, 6, 5, 6, 4, 5, 5, 6, 5, 6, 6, 6}

// tables holds the 32 big_values tables (index 0..31) plus the two
// count1 tables (index 32, 33).
var tables [34]*table

func init() {
	tables[0] = &table{}
	tables[4] = &table{}
	tables[14] = &table{}

	pairs := map[int]pairData{
		1: pair1, 2: pair2, 3: pair3, 5: pair5, 6: pair6, 7: pair7,
		8: pair8, 9: pair9, 10: pair10, 11: pair11, 12: pair12,
		13: pair13, 15: pair15,
	}
	for num, p := range pairs {
		tables[num] = &table{entries: pairEntries(p)}
	}

	linbits := map[int]int{
		16: 1, 17: 2, 18: 3, 19: 4, 20: 6, 21: 8, 22: 10, 23: 13,
		24: 4, 25: 5, 26: 6, 27: 7, 28: 8, 29: 9, 30: 11, 31: 13,
	}
	shared16 := pairEntries(pair16)
	shared24 := pairEntries(pair24)
	for num := 16; num <= 23; num++ {
		tables[num] = &table{linbits: linbits[num], entries: shared16}
	}
	for num := 24; num <= 31; num++ {
		tables[num] = &table{linbits: linbits[num], entries: shared24}
	}

	quadA := make([]node, 16)
	quadB := make([]node, 16)
	for n := 0; n < 16; n++ {
		quadA[n] = node{len: int(quadALens[n]), code: quadACodes[n], x: n}
		quadB[n] = node{len: 4, code: uint32(15 - n), x: n}
	}
	tables[32] = &table{entries: quadA}
	tables[33] = &table{entries: quadB}
}

func pairEntries(p pairData) []node {
	entries := make([]node, 0, p.dim*p.dim)
	for x := 0; x < p.dim; x++ {
		for y := 0; y < p.dim; y++ {
			i := x*p.dim + y
			entries = append(entries, node{
				len:  int(p.lens[i]),
				code: p.codes[i],
				x:    x,
				y:    y,
			})
		}
	}
	return entries
}
