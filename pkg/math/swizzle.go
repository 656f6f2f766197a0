package math

// Swizzles reorder (and truncate) vector components.

func (v Vec2[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }
func (v Vec2[T]) YX() Vec2[T] { return Vec2[T]{v.Y, v.X} }

func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }
func (v Vec3[T]) YX() Vec2[T] { return Vec2[T]{v.Y, v.X} }

func (v Vec3[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }
func (v Vec3[T]) XZY() Vec3[T] { return Vec3[T]{v.X, v.Z, v.Y} }
func (v Vec3[T]) YXZ() Vec3[T] { return Vec3[T]{v.Y, v.X, v.Z} }
func (v Vec3[T]) YZX() Vec3[T] { return Vec3[T]{v.Y, v.Z, v.X} }
func (v Vec3[T]) ZXY() Vec3[T] { return Vec3[T]{v.Z, v.X, v.Y} }
func (v Vec3[T]) ZYX() Vec3[T] { return Vec3[T]{v.Z, v.Y, v.X} }

func (v Vec4[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }
func (v Vec4[T]) YX() Vec2[T] { return Vec2[T]{v.Y, v.X} }

func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }
func (v Vec4[T]) XZY() Vec3[T] { return Vec3[T]{v.X, v.Z, v.Y} }
func (v Vec4[T]) YXZ() Vec3[T] { return Vec3[T]{v.Y, v.X, v.Z} }
func (v Vec4[T]) YZX() Vec3[T] { return Vec3[T]{v.Y, v.Z, v.X} }
func (v Vec4[T]) ZXY() Vec3[T] { return Vec3[T]{v.Z, v.X, v.Y} }
func (v Vec4[T]) ZYX() Vec3[T] { return Vec3[T]{v.Z, v.Y, v.X} }

func (v Vec4[T]) XYZW() Vec4[T] { return Vec4[T]{v.X, v.Y, v.Z, v.W} }
func (v Vec4[T]) XYWZ() Vec4[T] { return Vec4[T]{v.X, v.Y, v.W, v.Z} }
func (v Vec4[T]) XZYW() Vec4[T] { return Vec4[T]{v.X, v.Z, v.Y, v.W} }
func (v Vec4[T]) XZWY() Vec4[T] { return Vec4[T]{v.X, v.Z, v.W, v.Y} }
func (v Vec4[T]) XWYZ() Vec4[T] { return Vec4[T]{v.X, v.W, v.Y, v.Z} }
func (v Vec4[T]) XWZY() Vec4[T] { return Vec4[T]{v.X, v.W, v.Z, v.Y} }
func (v Vec4[T]) YXZW() Vec4[T] { return Vec4[T]{v.Y, v.X, v.Z, v.W} }
func (v Vec4[T]) YXWZ() Vec4[T] { return Vec4[T]{v.Y, v.X, v.W, v.Z} }
func (v Vec4[T]) YZXW() Vec4[T] { return Vec4[T]{v.Y, v.Z, v.X, v.W} }
func (v Vec4[T]) YZWX() Vec4[T] { return Vec4[T]{v.Y, v.Z, v.W, v.X} }
func (v Vec4[T]) YWXZ() Vec4[T] { return Vec4[T]{v.Y, v.W, v.X, v.Z} }
func (v Vec4[T]) YWZX() Vec4[T] { return Vec4[T]{v.Y, v.W, v.Z, v.X} }
func (v Vec4[T]) ZXYW() Vec4[T] { return Vec4[T]{v.Z, v.X, v.Y, v.W} }
func (v Vec4[T]) ZXWY() Vec4[T] { return Vec4[T]{v.Z, v.X, v.W, v.Y} }
func (v Vec4[T]) ZYXW() Vec4[T] { return Vec4[T]{v.Z, v.Y, v.X, v.W} }
func (v Vec4[T]) ZYWX() Vec4[T] { return Vec4[T]{v.Z, v.Y, v.W, v.X} }
func (v Vec4[T]) ZWXY() Vec4[T] { return Vec4[T]{v.Z, v.W, v.X, v.Y} }
func (v Vec4[T]) ZWYX() Vec4[T] { return Vec4[T]{v.Z, v.W, v.Y, v.X} }
func (v Vec4[T]) WXYZ() Vec4[T] { return Vec4[T]{v.W, v.X, v.Y, v.Z} }
func (v Vec4[T]) WXZY() Vec4[T] { return Vec4[T]{v.W, v.X, v.Z, v.Y} }
func (v Vec4[T]) WYXZ() Vec4[T] { return Vec4[T]{v.W, v.Y, v.X, v.Z} }
func (v Vec4[T]) WYZX() Vec4[T] { return Vec4[T]{v.W, v.Y, v.Z, v.X} }
func (v Vec4[T]) WZXY() Vec4[T] { return Vec4[T]{v.W, v.Z, v.X, v.Y} }
func (v Vec4[T]) WZYX() Vec4[T] { return Vec4[T]{v.W, v.Z, v.Y, v.X} }
