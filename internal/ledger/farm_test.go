package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFarm_Success(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.RegisterFarm(testWriter, testFarmInput()))
	assert.Equal(t, uint64(1), l.TotalFarms())

	evt := lastEvent(t, l)
	assert.Equal(t, EventFarmRegistered, evt.Type)
	assert.Equal(t, "FARM001", evt.Key)
	assert.Equal(t, testWriter, evt.Actor)
}

func TestRegisterFarm_StoresAllFields(t *testing.T) {
	l := newTestLedger(t)
	in := testFarmInput()
	require.NoError(t, l.RegisterFarm(testWriter, in))

	farm, err := l.GetFarm("FARM001")
	require.NoError(t, err)
	assert.Equal(t, in.FarmCode, farm.FarmCode)
	assert.Equal(t, in.Fullname, farm.Fullname)
	assert.Equal(t, in.NameFarm, farm.NameFarm)
	assert.Equal(t, in.UserID, farm.UserID)
	assert.Equal(t, in.Area, farm.Area)
	assert.Equal(t, in.Images, farm.Images)
	assert.True(t, farm.IsActive)
}

func TestRegisterFarm_DuplicateCodeConflict(t *testing.T) {
	l := newTestLedger(t)
	registerTestFarm(t, l)

	in := testFarmInput()
	in.NameFarm = "Trang Trai Khac"
	err := l.RegisterFarm(testWriter, in)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindConflict))

	// Bản ghi gốc không bị thay đổi
	farm, err := l.GetFarm("FARM001")
	require.NoError(t, err)
	assert.Equal(t, "Nong Trai Xanh", farm.NameFarm)
	assert.Equal(t, uint64(1), l.TotalFarms())
}

func TestRegisterFarm_EmptyCodeRejected(t *testing.T) {
	l := newTestLedger(t)

	in := testFarmInput()
	in.FarmCode = ""
	err := l.RegisterFarm(testWriter, in)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
	assert.EqualError(t, err, "Validation: Empty farmCode")
	assert.Equal(t, uint64(0), l.TotalFarms())
}

func TestRegisterFarm_AreaBounds(t *testing.T) {
	tests := []struct {
		name    string
		area    uint64
		wantErr bool
	}{
		{"below minimum", 0, true},
		{"at minimum", MinArea, false},
		{"at maximum", MaxArea, false},
		{"above maximum", MaxArea + 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t)
			in := testFarmInput()
			in.Area = tc.area

			err := l.RegisterFarm(testWriter, in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, IsKind(err, KindValidation))
				assert.Equal(t, uint64(0), l.TotalFarms())
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint64(1), l.TotalFarms())
			}
		})
	}
}

func TestRegisterFarm_TooManyImagesRejected(t *testing.T) {
	l := newTestLedger(t)

	in := testFarmInput()
	in.Images = make([]string, MaxImages+1)
	for i := range in.Images {
		in.Images[i] = "https://example.com/img.jpg"
	}

	err := l.RegisterFarm(testWriter, in)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}

func TestRegisterFarm_UnauthorizedRejected(t *testing.T) {
	l := newTestLedger(t)

	err := l.RegisterFarm(testOther, testFarmInput())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAccessControl))
	assert.EqualError(t, err, "AccessControl: Not authorized")
	assert.Equal(t, uint64(0), l.TotalFarms())
	assert.Empty(t, l.Events())
}

func TestUpdateFarm_MutatesAllowedFields(t *testing.T) {
	l := newTestLedger(t)
	registerTestFarm(t, l)

	require.NoError(t, l.UpdateFarm(testWriter, "FARM001", FarmUpdate{
		NameFarm:    "Nong Trai Moi",
		Description: "Mo ta moi",
		Location:    "Da Nang, Viet Nam",
		Area:        8000,
		Images:      []string{"https://example.com/new.jpg"},
	}))

	farm, err := l.GetFarm("FARM001")
	require.NoError(t, err)
	assert.Equal(t, "Nong Trai Moi", farm.NameFarm)
	assert.Equal(t, uint64(8000), farm.Area)
	// Code và danh tính chủ sở hữu là bất biến
	assert.Equal(t, "FARM001", farm.FarmCode)
	assert.Equal(t, "USER001", farm.UserID)

	assert.Equal(t, EventFarmUpdated, lastEvent(t, l).Type)
}

func TestUpdateFarm_NotFound(t *testing.T) {
	l := newTestLedger(t)

	err := l.UpdateFarm(testWriter, "NONEXISTENT", FarmUpdate{NameFarm: "X", Area: 100})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
	assert.EqualError(t, err, "NotFound: Farm not found")
}

func TestDeactivateFarm_SoftDelete(t *testing.T) {
	l := newTestLedger(t)
	registerTestFarm(t, l)

	require.NoError(t, l.DeactivateFarm(testWriter, "FARM001"))

	// Bản ghi vẫn truy vấn được sau khi deactivate
	farm, err := l.GetFarm("FARM001")
	require.NoError(t, err)
	assert.False(t, farm.IsActive)
}

func TestDeactivateFarm_Idempotent(t *testing.T) {
	l := newTestLedger(t)
	registerTestFarm(t, l)

	require.NoError(t, l.DeactivateFarm(testWriter, "FARM001"))
	eventsAfterFirst := len(l.Events())

	// Gọi lần hai: không lỗi, không phát thêm sự kiện
	require.NoError(t, l.DeactivateFarm(testWriter, "FARM001"))
	assert.Len(t, l.Events(), eventsAfterFirst)

	farm, err := l.GetFarm("FARM001")
	require.NoError(t, err)
	assert.False(t, farm.IsActive)
}

func TestAddFarmImage_AppendsToEnd(t *testing.T) {
	l := newTestLedger(t)
	registerTestFarm(t, l)

	require.NoError(t, l.AddFarmImage(testWriter, "FARM001", "https://example.com/farm3.jpg"))

	images, err := l.GetFarmImages("FARM001")
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "https://example.com/farm3.jpg", images[2])
}

func TestAddFarmImage_RespectsLimit(t *testing.T) {
	l := newTestLedger(t)
	in := testFarmInput()
	in.Images = make([]string, MaxImages)
	for i := range in.Images {
		in.Images[i] = "https://example.com/img.jpg"
	}
	require.NoError(t, l.RegisterFarm(testWriter, in))

	err := l.AddFarmImage(testWriter, "FARM001", "https://example.com/overflow.jpg")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}

func TestRemoveFarmImage_StableOrder(t *testing.T) {
	l := newTestLedger(t)
	registerTestFarm(t, l)

	// Xoá ảnh đầu: ảnh còn lại dồn sang trái, giữ nguyên thứ tự
	require.NoError(t, l.RemoveFarmImage(testWriter, "FARM001", 0))

	images, err := l.GetFarmImages("FARM001")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "https://example.com/farm2.jpg", images[0])
}

func TestRemoveFarmImage_IndexOutOfRange(t *testing.T) {
	l := newTestLedger(t)
	registerTestFarm(t, l)

	err := l.RemoveFarmImage(testWriter, "FARM001", 2)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))

	// Danh sách ảnh không thay đổi
	images, err := l.GetFarmImages("FARM001")
	require.NoError(t, err)
	assert.Len(t, images, 2)

	err = l.RemoveFarmImage(testWriter, "FARM001", -1)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}

func TestGetFarm_NotFound(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.GetFarm("NONEXISTENT")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestGetFarmsByUserID(t *testing.T) {
	l := newTestLedger(t)
	registerTestFarm(t, l)

	second := testFarmInput()
	second.FarmCode = "FARM002"
	require.NoError(t, l.RegisterFarm(testWriter, second))

	// userId không bắt buộc duy nhất: hai farm cùng một chủ
	farms := l.GetFarmsByUserID("USER001")
	require.Len(t, farms, 2)
	assert.Equal(t, "FARM001", farms[0].FarmCode)
	assert.Equal(t, "FARM002", farms[1].FarmCode)

	assert.Empty(t, l.GetFarmsByUserID("NONEXISTENT"))
}

func TestGetAllFarms_Snapshot(t *testing.T) {
	l := newTestLedger(t)
	registerTestFarm(t, l)

	farms := l.GetAllFarms()
	require.Len(t, farms, 1)
	assert.Equal(t, "FARM001", farms[0].FarmCode)

	// Sửa bản sao không đụng đến state bên trong ledger
	farms[0].Images[0] = "mutated"
	fresh, err := l.GetFarm("FARM001")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/farm1.jpg", fresh.Images[0])
}

func TestUserExists(t *testing.T) {
	l := newTestLedger(t)

	assert.False(t, l.UserExists("USER001"))
	registerTestFarm(t, l)
	assert.True(t, l.UserExists("USER001"))
}
